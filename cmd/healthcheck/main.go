package main

import (
	"net"
	"net/http"
	"os"
	"time"

	"github.com/ericogr/laro-arcade/internal/constants"
)

// probeURL targets the local server's health route, following LARO_ADDR.
func probeURL(addr string) string {
	if addr == "" {
		addr = ":8080"
	}
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "http://127.0.0.1:8080" + constants.RouteHealth
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "127.0.0.1"
	}
	return "http://" + net.JoinHostPort(host, port) + constants.RouteHealth
}

func main() {
	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(probeURL(os.Getenv(constants.EnvServerAddress)))
	if err != nil {
		os.Exit(1)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		os.Exit(1)
	}
	os.Exit(0)
}
