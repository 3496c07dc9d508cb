package main

import (
	"context"
	"flag"
	"fmt"

	"mealplanner/internal/client"
	"mealplanner/internal/delivery/api/dto"

	"github.com/pkg/errors"
)

func runRegister(ctx context.Context, ws *client.Workspace, args []string) error {
	cmd := flag.NewFlagSet("register", flag.ExitOnError)
	name := cmd.String("name", "", "Display name")
	email := cmd.String("email", "", "Email address")
	password := cmd.String("password", "", "Password (min 8 chars, letters and digits)")
	if err := cmd.Parse(args); err != nil {
		return errors.Wrap(err, "failed to parse register flags")
	}
	if *name == "" || *email == "" || *password == "" {
		return errors.New("--name, --email and --password are required")
	}

	user, err := ws.Register(ctx, &dto.RegisterRequest{Name: *name, Email: *email, Password: *password})
	if err != nil {
		return err
	}
	fmt.Printf("Registered and logged in as %s <%s>\n", user.Name, user.Email)

	return nil
}

func runLogin(ctx context.Context, ws *client.Workspace, args []string) error {
	cmd := flag.NewFlagSet("login", flag.ExitOnError)
	email := cmd.String("email", "", "Email address")
	password := cmd.String("password", "", "Password")
	if err := cmd.Parse(args); err != nil {
		return errors.Wrap(err, "failed to parse login flags")
	}
	if *email == "" || *password == "" {
		return errors.New("--email and --password are required")
	}

	user, err := ws.Login(ctx, &dto.LoginRequest{Email: *email, Password: *password})
	if err != nil {
		return err
	}
	fmt.Printf("Logged in as %s <%s>\n", user.Name, user.Email)

	return nil
}

func runLogout(ctx context.Context, ws *client.Workspace, _ []string) error {
	if err := ws.Logout(ctx); err != nil {
		return err
	}
	fmt.Println("Logged out")

	return nil
}

func runWhoami(ctx context.Context, ws *client.Workspace, _ []string) error {
	user, err := ws.Auth.CurrentUser(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("%s <%s> id=%s\n", user.Name, user.Email, user.ID)

	return nil
}
