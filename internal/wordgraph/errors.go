package wordgraph

import "fmt"

type GraphError struct {
	Kind    string
	Message string
}

func (e GraphError) Error() string {
	return fmt.Sprintf("wordgraph error (%v): %v", e.Kind, e.Message)
}

func nodeDoesNotExist(id NodeID) error {
	return GraphError{Kind: "NodeDoesNotExist", Message: fmt.Sprintf("node %d does not exist", id)}
}
