package main

import "github.com/demoapps/go-services/internal/server"

func main() {
	server.Main(server.Expenses.DefaultDatabase, server.Expenses)
}
