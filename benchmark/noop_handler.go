package benchmark

import "github.com/Philipp01105/accesslog/handler"

type noopHandler struct{}

func newNoopHandler() handler.Handler {
	return &noopHandler{}
}

func (h *noopHandler) Handle(line string) error {
	_ = len(line)
	return nil
}

func (h *noopHandler) Close() error {
	return nil
}
