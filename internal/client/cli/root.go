package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	s := ""
	if a.userName != "" {
		s = a.userName
		if a.creds != nil && !a.creds.Verified {
			s = s + " unverified"
		}
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

func (a *App) report(err error) {
	if err != nil {
		fmt.Println(err.Error())
	}
}

func (a *App) Root(ctx context.Context) {

	log.Println("Welcome to keywarden CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("kwd %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Println("Available commands: verify, keys, changepw, logout, ping, exit")
			} else {
				fmt.Println("Available commands: register, login, forgot, changepw, ping")
			}

		case "register":
			a.report(a.Register(ctx))
		case "login":
			a.report(a.Login(ctx))
		case "verify":
			a.report(a.Verify(ctx))
		case "keys":
			a.report(a.Keys(ctx))
		case "changepw":
			a.report(a.ChangePassword(ctx))
		case "forgot":
			a.report(a.ForgotPassword(ctx))
		case "logout":
			a.report(a.Logout(ctx))
		case "ping":
			if err := a.authService.Ping(ctx); err != nil {
				fmt.Println("Server unreachable:", err.Error())
			} else {
				fmt.Println("OK")
			}
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}
	}

}
