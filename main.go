package main

import "github.com/demoapps/go-services/internal/server"

// main serves every app from one process; each app also has its own binary under cmd/.
func main() {
	server.Main("demoapps", server.All...)
}
