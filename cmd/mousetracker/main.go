package main

import "github.com/demoapps/go-services/internal/server"

func main() {
	server.Main(server.MouseTracker.DefaultDatabase, server.MouseTracker)
}
