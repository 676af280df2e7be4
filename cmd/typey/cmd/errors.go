package cmd

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/jladdjr/typey-type/internal/app"
)

// isDBLockError returns true if the error chain contains a bbolt lock timeout.
// bbolt returns the string "timeout" when it cannot acquire the file lock
// within the configured deadline.
func isDBLockError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "timeout")
}

// serverAlive reports whether an HTTP server answers health checks at addr.
func serverAlive(addr string) bool {
	client := http.Client{Timeout: time.Second}
	resp, err := client.Get("http://" + addr + "/api/health")
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// diagnoseDBLock returns guidance for a locked database. The usual holder
// is a running `typey serve`, which records its address in the port file.
func diagnoseDBLock(paths *app.Paths) string {
	data, err := os.ReadFile(paths.PortFile)
	if err != nil {
		return "database is locked by another process\n" +
			"  → find the process:  ps aux | grep 'typey'\n" +
			"  → kill it:           kill <PID>\n" +
			"  → then retry your command"
	}

	addr := strings.TrimSpace(string(data))
	if serverAlive(addr) {
		return fmt.Sprintf("database is locked by typey serve on %s\n"+
			"  → use the HTTP API:  curl http://%s/api/health\n"+
			"  → or stop the server and retry your command", addr, addr)
	}

	return fmt.Sprintf("database is locked and the server recorded in %s is not responding\n"+
		"  → a previous server may have crashed\n"+
		"  → find the process:  ps aux | grep 'typey serve'\n"+
		"  → kill it:           kill <PID>\n"+
		"  → clean up:          rm %s", paths.PortFile, paths.PortFile)
}
