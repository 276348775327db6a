package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tliron/glsp"
)

func TestRequestContext_AddWarning(t *testing.T) {
	req := NewRequestContext(nil, &glsp.Context{Method: "test"})

	assert.False(t, req.HasWarnings())
	assert.Nil(t, req.Warnings())

	err1 := errors.New("warning 1")
	err2 := errors.New("warning 2")
	req.AddWarning(err1)
	req.AddWarning(nil)
	req.AddWarning(err2)

	assert.True(t, req.HasWarnings())
	assert.Equal(t, []error{err1, err2}, req.Warnings())
}

func TestRequestContext_ContextAccess(t *testing.T) {
	glspCtx := &glsp.Context{Method: "abbreviation/context"}
	req := NewRequestContext(nil, glspCtx)

	assert.Same(t, glspCtx, req.GLSP)
	assert.Equal(t, "abbreviation/context", req.GLSP.Method)
}
