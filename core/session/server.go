package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/gliderlabs/ssh"
	gossh "golang.org/x/crypto/ssh"

	"github.com/josephlewis42/logos/core/config"
	"github.com/josephlewis42/logos/core/interp"
	"github.com/josephlewis42/logos/core/lang"
	"github.com/josephlewis42/logos/core/logger"
)

// Server exposes the desktop over SSH: every connection gets its own
// interpreter session and REPL, with steps recorded to a per-session
// JSON-lines log.
type Server struct {
	configuration *config.Configuration
	logger        *logger.Logger
	sshServer     *ssh.Server
}

// NewServer prepares the SSH front end. Application-level events go to
// logDest; per-session step logs land in the configured logs directory.
func NewServer(configuration *config.Configuration, logDest io.Writer) (*Server, error) {
	server := &Server{
		configuration: configuration,
		logger:        logger.NewJSONLinesRecorder(logDest),
	}

	server.sshServer = &ssh.Server{
		Addr: fmt.Sprintf(":%d", configuration.SSHPort),
		Handler: func(s ssh.Session) {
			server.HandleConnection(s)
		},
	}

	keyPem, err := configuration.HostKeyPem()
	if err != nil {
		return nil, fmt.Errorf("reading host key: %v", err)
	}
	signer, err := gossh.ParsePrivateKey(keyPem)
	if err != nil {
		return nil, fmt.Errorf("parsing host key: %v", err)
	}
	server.sshServer.AddHostKey(signer)

	return server, nil
}

// HandleConnection runs one desktop session over an SSH channel.
func (h *Server) HandleConnection(s ssh.Session) error {
	sessionLogger := h.logger.NewSession()
	sessionLogger.RecordSessionStart(&logger.SessionStart{
		User:       s.User(),
		RemoteAddr: fmt.Sprintf("%s", s.RemoteAddr()),
		Capability: h.configuration.Capability,
	})

	logName := fmt.Sprintf("%s-%s.jsonl",
		time.Now().Format("2006-01-02T15-04-05"), sessionLogger.SessionID())
	logFd, err := h.configuration.CreateSessionLog(logName)
	if err != nil {
		s.Exit(1)
		return err
	}
	defer logFd.Close()
	stepLogger := logger.NewJSONLinesRecorder(logFd).NewSession()

	observer := func(ins lang.Instruction, transform interp.Transform, st *interp.State) {
		step := &logger.Step{
			Name:    ins.Name,
			Args:    ins.Args,
			Program: st.Current,
		}
		if transform != nil {
			step.Transform = transform.String()
		}
		stepLogger.RecordStep(step)
	}

	pcfg := ProgramsConfig(h.configuration)
	pcfg.Stdin = s
	pcfg.Stdout = s

	it, err := NewInterp(h.configuration, pcfg, h.configuration.StartupScript, observer)
	if err != nil {
		fmt.Fprintf(s, "can't start session: %v\n", err)
		s.Exit(1)
		return err
	}

	if banner := h.configuration.SSHBanner; banner != "" {
		fmt.Fprintln(s, banner)
	}
	if motd := h.configuration.Motd; motd != "" {
		fmt.Fprintln(s, motd)
	}

	repl, err := NewREPL(it, s, s, s.Stderr())
	if err != nil {
		s.Exit(1)
		return err
	}
	defer repl.Close()

	if err := repl.Run(); err != nil {
		stepError := &logger.StepError{Error: err.Error()}
		var stepErr *interp.Error
		if errors.As(err, &stepErr) {
			stepError.Name = stepErr.Name
			stepError.Args = stepErr.Args
		}
		stepLogger.RecordStepError(stepError)
		fmt.Fprintf(s, "%v\n", err)
		s.Exit(1)
		return err
	}

	s.Exit(0)
	return nil
}

// ListenAndServe blocks serving SSH connections.
func (h *Server) ListenAndServe() error {
	log.Printf("- Starting SSH server on %s\n", h.sshServer.Addr)
	return h.sshServer.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (h *Server) Shutdown(ctx context.Context) error {
	return h.sshServer.Shutdown(ctx)
}
