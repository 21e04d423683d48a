package main

import (
	"flag"
	"log"

	"github.com/edumanage/portal/devserver"
)

// Stub backend for local portal development. Fixture logins are printed on
// startup; data lives in memory only.
func main() {
	addr := flag.String("addr", ":5000", "listen address")
	flag.Parse()

	log.Printf("fixture logins (password %q): %s | %s | %s",
		devserver.DemoPassword, devserver.AdminEmail, devserver.TeacherEmail, devserver.ParentEmail)

	app := devserver.NewServer(
		&devserver.Options{
			Address: *addr,
			DB:      devserver.Seed(),
		},
	)
	app.Start()
}
