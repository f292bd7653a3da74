package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	if u := a.session.User(); u != nil {
		return fmt.Sprintf("(%s)", u.Email)
	}
	return ""
}

func (a *App) Root(ctx context.Context) {
	fmt.Println("Welcome to wantmart (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("wantmart %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			a.help()
		case "register":
			a.Register(ctx)
		case "login":
			a.Login(ctx)
		case "verify":
			a.Verify(ctx)
		case "resend":
			a.Resend(ctx)
		case "logout":
			a.Logout(ctx)
		case "whoami":
			a.WhoAmI()
		case "products":
			category := ""
			if len(args) > 0 {
				category = args[0]
			}
			a.ListProducts(ctx, category)
		case "view":
			if len(args) == 0 {
				fmt.Println("Usage: view <product-id>")
				continue
			}
			a.ViewProduct(ctx, args[0])
		case "offer":
			if len(args) == 0 {
				fmt.Println("Usage: offer <product-id>")
				continue
			}
			a.MakeOffer(ctx, args[0])
		case "myoffers":
			a.MyOffers(ctx)
		case "request":
			a.CreateRequest(ctx)
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}
	}
}

func (a *App) help() {
	if a.isLoggedIn() {
		fmt.Println("Available commands: products [category], view <id>, offer <id>, myoffers, request, whoami, logout, exit")
	} else {
		fmt.Println("Available commands: register, login, verify, products [category], view <id>, exit")
	}
}
