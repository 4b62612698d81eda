package main

import (
	"context"
	"io"
	"os"

	"github.com/hdanswers/answerset/debug"

	"github.com/google/gops/agent"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/zap"
)

const lsName = "ans-lsp"

var (
	version = "0.0.1"
)

func main() {
	ctx := context.Background()
	level := os.Getenv("ANS_LSP_LOG")
	if level == "" {
		level = "warn"
	}
	logger := debug.NewLogger(level).Named(lsName)
	defer logger.Sync()

	// ANS_LSP_GOPS starts a gops agent for inspecting a running server.
	if os.Getenv("ANS_LSP_GOPS") != "" {
		if err := agent.Listen(agent.Options{}); err != nil {
			logger.Warn("gops agent", zap.Error(err))
		} else {
			defer agent.Close()
		}
	}

	stream := jsonrpc2.NewStream(&stdioReadWriteCloser{
		read:  os.Stdin,
		write: os.Stdout,
	})
	server := newServer(logger)
	handler := protocol.ServerHandler(server, nil)
	conn := jsonrpc2.NewConn(stream)
	server.conn = conn
	conn.Go(ctx, handler)
	<-conn.Done()
	if err := conn.Err(); err != nil {
		logger.Info("connection closed", zap.Error(err))
	}
}

type stdioReadWriteCloser struct {
	read  io.Reader
	write io.Writer
}

func (s *stdioReadWriteCloser) Read(p []byte) (n int, err error) {
	return s.read.Read(p)
}

func (s *stdioReadWriteCloser) Write(p []byte) (n int, err error) {
	return s.write.Write(p)
}

func (s *stdioReadWriteCloser) Close() error {
	return nil
}
