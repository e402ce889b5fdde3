// Package profile implements the profile management verbs.
package profile

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/robogirl96/pottypanda/pkg/app"
	"github.com/robogirl96/pottypanda/pkg/printers"
	"github.com/robogirl96/pottypanda/pkg/runner/confirm"
)

// List prints every profile, marking the active one.
type List struct {
	Service *app.Service
	ShowID  bool
}

func (l *List) Do(ctx context.Context) error {
	if l.Service == nil {
		return errors.New("can not list profiles, no service")
	}
	pp := printers.PrettyPrint{ShowID: l.ShowID}
	fmt.Println("")
	pp.Title("Child Profiles")
	pp.Profiles(l.Service.Profiles(), l.Service.ActiveProfile().ID)
	return nil
}

// Add creates a new profile and makes it active.
type Add struct {
	Service *app.Service
	Name    string
}

func (a *Add) Do(ctx context.Context) error {
	if a.Service == nil {
		return errors.New("can not add profile, no service")
	}
	profile, err := a.Service.AddProfile(a.Name)
	if errors.Is(err, app.ErrEmptyName) {
		return errors.New("profile name must not be empty")
	}
	if err != nil {
		return err
	}
	fmt.Printf("Added %s and made it the active profile.\n", profile.Name)
	return nil
}

// Rename updates a profile's display name.
type Rename struct {
	Service *app.Service
	Target  string // id or name
	NewName string
}

func (r *Rename) Do(ctx context.Context) error {
	if r.Service == nil {
		return errors.New("can not rename profile, no service")
	}
	profile, ok := r.Service.ResolveProfile(r.Target)
	if !ok {
		return fmt.Errorf("no profile matching %q", r.Target)
	}
	if err := r.Service.RenameProfile(profile.ID, r.NewName); err != nil {
		if errors.Is(err, app.ErrEmptyName) {
			return errors.New("profile name must not be empty")
		}
		return err
	}
	fmt.Printf("Renamed %s to %s.\n", profile.Name, r.NewName)
	return nil
}

// Delete removes a profile and all of its logs, gated by confirmation.
type Delete struct {
	Service *app.Service
	Target  string // id or name
	Yes     bool
}

func (d *Delete) Do(ctx context.Context) error {
	if d.Service == nil {
		return errors.New("can not delete profile, no service")
	}
	profile, ok := d.Service.ResolveProfile(d.Target)
	if !ok {
		return fmt.Errorf("no profile matching %q", d.Target)
	}

	if !d.Yes {
		msg := fmt.Sprintf("Delete %s and ALL of their logs?", profile.Name)
		if !confirm.Ask(os.Stdout, os.Stdin, msg) {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	if err := d.Service.DeleteProfile(profile.ID); err != nil {
		if errors.Is(err, app.ErrLastProfile) {
			fmt.Println("You must have at least one profile in the app.")
			return nil
		}
		return err
	}
	fmt.Printf("Deleted %s. Active profile is now %s.\n", profile.Name, d.Service.ActiveProfile().Name)
	return nil
}

// Use switches the active profile.
type Use struct {
	Service *app.Service
	Target  string // id or name
}

func (u *Use) Do(ctx context.Context) error {
	if u.Service == nil {
		return errors.New("can not switch profile, no service")
	}
	profile, ok := u.Service.ResolveProfile(u.Target)
	if !ok {
		return fmt.Errorf("no profile matching %q", u.Target)
	}
	if err := u.Service.SetActiveProfile(profile.ID); err != nil {
		return err
	}
	fmt.Printf("Active profile is now %s.\n", profile.Name)
	return nil
}
