package cli

import (
	"context"
	"strings"
	"time"

	"github.com/dmitrijs2005/krishi/internal/async"
	"github.com/dmitrijs2005/krishi/internal/client/models"
	"github.com/dmitrijs2005/krishi/internal/common"
)

// getSimpleText, getPassword and getList are indirections used to
// facilitate testing.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getList       = GetList
)

// progressEvery is how often the waiting indicator repeats.
var progressEvery = time.Second

// withProgress runs fn in the background and prints the processing indicator
// until it finishes.
func withProgress[T any](ctx context.Context, a *App, fn func(ctx context.Context) (T, error)) (T, error) {
	f := async.Go(ctx, fn)

	a.println(a.lang.T("processing_request"))
	ticker := time.NewTicker(progressEvery)
	defer ticker.Stop()
	for {
		select {
		case <-f.Done():
			return f.Await(ctx)
		case <-ticker.C:
			a.println(a.lang.T("processing_request"))
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		}
	}
}

func (a *App) prompt(key string) (string, error) {
	return getSimpleText(a.reader, a.lang.T(key), a.out)
}

// Signup collects the registration form field by field and creates the
// account. It does not log the new user in.
func (a *App) Signup(ctx context.Context, args []string) error {
	var (
		form models.SignupForm
		err  error
	)

	fields := []struct {
		key string
		dst *string
	}{
		{"signup_name", &form.Name},
		{"signup_phone", &form.Phone},
		{"signup_email", &form.Email},
		{"select_state", &form.State},
		{"select_district", &form.District},
		{"signup_village", &form.Village},
	}
	for _, f := range fields {
		if *f.dst, err = a.prompt(f.key); err != nil {
			return err
		}
	}

	if form.Crops, err = getList(a.reader, a.lang.T("crops_grown"), a.out); err != nil {
		return err
	}
	if form.FarmSize, err = a.prompt("farm_size"); err != nil {
		return err
	}
	if form.Language, err = a.prompt("preferred_language"); err != nil {
		return err
	}
	if form.Language == "" {
		form.Language = a.lang.Current()
	}
	userType, err := a.prompt("account_type")
	if err != nil {
		return err
	}
	if strings.EqualFold(userType, string(models.UserTypeOfficer)) {
		form.UserType = models.UserTypeOfficer
	}

	password, err := getPassword(a.reader, a.lang.T("signup_password"), a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	confirm, err := getPassword(a.reader, a.lang.T("signup_confirm"), a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)
	form.Password, form.ConfirmPassword = string(password), string(confirm)

	user, err := withProgress(ctx, a, func(ctx context.Context) (*models.User, error) {
		return a.auth.Signup(ctx, form)
	})
	if err != nil {
		return err
	}

	a.println(a.lang.TranslateParams("account_created", map[string]string{"name": user.Name}))
	return nil
}

// Login asks for an email or phone and a password and opens a session.
func (a *App) Login(ctx context.Context, args []string) error {
	identifier, err := a.prompt("login_identifier")
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.lang.T("login_password"), a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := withProgress(ctx, a, func(ctx context.Context) (*models.User, error) {
		return a.auth.Login(ctx, identifier, string(password))
	})
	if err != nil {
		return err
	}

	a.user = user
	a.println(a.lang.TranslateParams("welcome_back", map[string]string{"name": user.Name}))
	return nil
}

func (a *App) Logout(ctx context.Context, args []string) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	a.user = nil
	a.println(a.lang.T("logged_out"))
	return nil
}

// WhoAmI prints the stored current-user snapshot.
func (a *App) WhoAmI(ctx context.Context, args []string) error {
	u, err := a.auth.CurrentUser(ctx)
	if err != nil {
		return err
	}
	a.println(u.String())
	a.println("  id:", u.ID, " type:", u.UserType, " crops:", strings.Join(u.Crops, ", "))
	a.println("  joined:", u.JoinDate.Format(time.DateOnly), " last login:", u.LastLogin.Format(time.DateTime))
	return nil
}

// Session reports whether the stored session is still valid.
func (a *App) Session(ctx context.Context, args []string) error {
	session, err := a.auth.ActiveSession(ctx)
	if err != nil {
		return err
	}
	if session == nil {
		a.user = nil
		a.println(a.lang.T("session_none"))
		return nil
	}
	a.println(a.lang.TranslateParams("session_valid", map[string]string{
		"expires": session.Expires.Local().Format(time.DateTime),
	}))
	return nil
}
