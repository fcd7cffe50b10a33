package postprocess

import "fmt"

type PPError struct {
	Kind    string
	Message string
}

func (e PPError) Error() string {
	return fmt.Sprintf("postprocess error (%v): %v", e.Kind, e.Message)
}
