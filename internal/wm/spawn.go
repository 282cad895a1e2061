package wm

import (
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

// spawn launches argv detached from tilewm's own session, the same
// fork/setsid/execvp shape as the reference spawn function. It does not
// wait for the child: StartReaper collects every terminated child
// process asynchronously via SIGCHLD, regardless of which binding
// started it.
func (w *WM) spawn(argv []string) {
	if len(argv) == 0 {
		return
	}
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	if err := cmd.Start(); err != nil {
		w.log.WithError(err).WithField("argv", argv).Warn("spawn failed")
		return
	}
	cmd.Process.Release()
}

// StartReaper installs a SIGCHLD handler and reaps every terminated
// child with a non-blocking wait loop, run repeatedly since more than
// one child can exit between signal deliveries.
func StartReaper(logger *log.Logger) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGCHLD)
	go func() {
		for range ch {
			for {
				var ws unix.WaitStatus
				pid, err := unix.Wait4(-1, &ws, unix.WNOHANG, nil)
				if pid <= 0 || err != nil {
					break
				}
			}
		}
	}()
	logger.Debug("sigchld reaper installed")
}
