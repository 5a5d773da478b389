package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Library resolves function calls coming back from a model.
type Library func(ctx context.Context, call *genai.FunctionCall) *genai.FunctionResponse

// Function is anything that can be declared to a model and called back.
type Function interface {
	Declaration() *genai.FunctionDeclaration
	Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

// NewLibrary assembles functions into a single dispatching Library.
func NewLibrary[T Function](functions ...T) Library {
	index := make(map[string]Function, len(functions))
	for _, f := range functions {
		index[f.Declaration().Name] = f
	}
	return func(ctx context.Context, call *genai.FunctionCall) *genai.FunctionResponse {
		f, ok := index[call.Name]
		if !ok {
			return &genai.FunctionResponse{
				ID:   call.ID,
				Name: call.Name,
				Response: map[string]any{
					"error": fmt.Sprintf("unknown function %q", call.Name),
				},
			}
		}
		return f.Call(ctx, call.ID, call.Args)
	}
}

// NewDeclarations collects the declarations of a set of functions.
func NewDeclarations[T Function](functions ...T) []*genai.FunctionDeclaration {
	decls := make([]*genai.FunctionDeclaration, 0, len(functions))
	for _, f := range functions {
		decls = append(decls, f.Declaration())
	}
	return decls
}

// Func adapts a plain Go function into a Function.
type Func struct {
	Decl *genai.FunctionDeclaration
	Fn   func(ctx context.Context, args map[string]any) (map[string]any, error)
}

func (f Func) Declaration() *genai.FunctionDeclaration { return f.Decl }

func (f Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	fresp := &genai.FunctionResponse{ID: id, Name: f.Decl.Name}
	out, err := f.Fn(ctx, args)
	if err != nil {
		fresp.Response = map[string]any{"error": err.Error()}
		return fresp
	}
	fresp.Response = out
	return fresp
}
