package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// InterruptHandler cancels long-running commands on SIGINT/SIGTERM and tells
// the user how much work was already saved.
type InterruptHandler struct {
	writer      io.Writer
	cancelFunc  context.CancelFunc
	saved       int
	interrupted bool
	mu          sync.Mutex
}

// NewInterruptHandler creates a new interrupt handler.
func NewInterruptHandler(writer io.Writer) *InterruptHandler {
	if writer == nil {
		writer = os.Stdout
	}
	return &InterruptHandler{
		writer: writer,
	}
}

// HandleInterrupts returns a context canceled on the first interrupt signal.
// Call stop to release the signal handler.
func (h *InterruptHandler) HandleInterrupts(ctx context.Context) (context.Context, func()) {
	ctx, cancel := context.WithCancel(ctx)
	h.mu.Lock()
	h.cancelFunc = cancel
	h.mu.Unlock()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		select {
		case <-sigChan:
			h.interrupt()
		case <-done:
		}
	}()

	var once sync.Once
	stop := func() {
		once.Do(func() {
			signal.Stop(sigChan)
			close(done)
			cancel()
		})
	}
	return ctx, stop
}

// RecordSaved updates the number of records persisted so far.
func (h *InterruptHandler) RecordSaved(n int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.saved = n
}

// interrupt prints the farewell message once and cancels the context.
func (h *InterruptHandler) interrupt() {
	h.mu.Lock()
	first := !h.interrupted
	h.interrupted = true
	saved := h.saved
	cancel := h.cancelFunc
	h.mu.Unlock()

	if first {
		h.showInterruptMessage(saved)
	}
	if cancel != nil {
		cancel()
	}
}

func (h *InterruptHandler) showInterruptMessage(saved int) {
	msg := "\n\n" + FormatWarning("Operação interrompida!")

	if saved > 0 {
		msg += "\n" + FormatInfo(fmt.Sprintf("%d transações já foram salvas.", saved))
	} else {
		msg += "\n" + FormatInfo("Nenhuma transação foi salva.")
	}
	msg += "\n"

	if _, err := fmt.Fprint(h.writer, msg); err != nil {
		slog.Warn("Failed to write interrupt message", "error", err)
	}
}

// WasInterrupted returns true if the process was interrupted.
func (h *InterruptHandler) WasInterrupted() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.interrupted
}
