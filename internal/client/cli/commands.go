package cli

import (
	"context"
	"fmt"

	"github.com/avasiliev/notekeep/internal/client/api"
)

func (a *App) Register(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Choose a username", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.api.Register(ctx, username, password); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Registered. You can now log in.")
	return nil
}

func (a *App) Login(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.api.Login(ctx, username, password); err != nil {
		return err
	}

	a.userName = username
	fmt.Fprintf(a.out, "Logged in as %s\n", username)
	return nil
}

func (a *App) Logout(_ context.Context) error {
	a.api.Logout()
	a.userName = ""
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) List(ctx context.Context) error {
	notes, err := a.api.ListNotes(ctx)
	if err != nil {
		return err
	}
	a.printNotes(notes)
	return nil
}

func (a *App) Add(ctx context.Context) error {
	title, err := GetSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	content, err := GetMultiline(a.reader, "Content", a.out)
	if err != nil {
		return err
	}

	if err := a.api.CreateNote(ctx, title, content); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Note added")
	return nil
}

func (a *App) Show(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Note id", a.out)
	if err != nil {
		return err
	}

	note, err := a.api.GetNote(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Title:   %s\nCreated: %s\n\n%s\n", note.Title, note.CreatedAt, note.Content)
	return nil
}

func (a *App) Edit(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Note id", a.out)
	if err != nil {
		return err
	}
	title, err := GetSimpleText(a.reader, "New title (leave empty to keep)", a.out)
	if err != nil {
		return err
	}
	content, err := GetMultiline(a.reader, "New content (leave empty to keep)", a.out)
	if err != nil {
		return err
	}

	var titlePtr, contentPtr *string
	if title != "" {
		titlePtr = &title
	}
	if content != "" {
		contentPtr = &content
	}
	if titlePtr == nil && contentPtr == nil {
		fmt.Fprintln(a.out, "Nothing to change")
		return nil
	}

	if err := a.api.UpdateNote(ctx, id, titlePtr, contentPtr); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Note updated")
	return nil
}

func (a *App) Remove(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Note id", a.out)
	if err != nil {
		return err
	}

	if err := a.api.DeleteNote(ctx, id); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Note deleted")
	return nil
}

func (a *App) Search(ctx context.Context) error {
	title, err := GetSimpleText(a.reader, "Title contains (leave empty to skip)", a.out)
	if err != nil {
		return err
	}
	content, err := GetSimpleText(a.reader, "Content contains (leave empty to skip)", a.out)
	if err != nil {
		return err
	}

	notes, err := a.api.SearchNotes(ctx, title, content)
	if err != nil {
		return err
	}
	a.printNotes(notes)
	return nil
}

func (a *App) printNotes(notes []api.Note) {
	if len(notes) == 0 {
		fmt.Fprintln(a.out, "No notes yet")
		return
	}
	for _, n := range notes {
		fmt.Fprintf(a.out, "%s  %s  %s\n", n.ID, n.CreatedAt, n.Title)
	}
}
