package errors

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestRecoverMiddlewareRecoversDeferredPanic(t *testing.T) {
	recovered := make(chan struct{})

	go func() {
		defer close(recovered)
		defer RecoverMiddleware()()
		panic("boom")
	}()

	select {
	case <-recovered:
	case <-time.After(time.Second):
		t.Fatal("expected the deferred recovery to catch the panic")
	}
}

func TestRecoverMiddlewareReportsToHandler(t *testing.T) {
	handler = NewErrorHandler("", nil)
	defer func() {
		handler.Stop()
		handler = nil
	}()

	recovered := make(chan struct{})
	go func() {
		defer close(recovered)
		defer RecoverMiddleware()()
		panic("eval blew up")
	}()

	select {
	case <-recovered:
	case <-time.After(time.Second):
		t.Fatal("expected the deferred recovery to catch the panic")
	}

	if got := atomic.LoadInt32(&handler.errorCount); got != 1 {
		t.Errorf("errorCount = %d, want 1", got)
	}
}

func TestHandlePanicIncrementsErrorCount(t *testing.T) {
	h := NewErrorHandler("", nil)
	defer h.Stop()

	h.HandlePanic("boom")
	h.HandlePanic("boom again")

	if got := atomic.LoadInt32(&h.errorCount); got != 2 {
		t.Errorf("errorCount = %d, want 2", got)
	}
}
