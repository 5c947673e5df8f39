package cli

import (
	"context"
	"encoding/hex"
	"fmt"
	"log"
	"os"

	"github.com/dmitrijs2005/keywarden/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for an email and password and attempts to create a new
// account. The password is scored locally before anything is sent; the
// server replies with the new uid and mails a confirmation code.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	uid, err := a.authService.Register(ctx, userName, password)
	if err != nil {
		return err
	}

	fmt.Printf("Account created (uid %s). Check your inbox for the confirmation code.\n", uid)
	return nil
}

// Login prompts for credentials and runs the zero-knowledge handshake. On
// success the minted session token is installed on the transport and the
// credentials are kept in memory for the rest of the REPL session.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	creds, err := a.authService.SrpLogin(ctx, userName, password)
	if err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		return err
	}

	a.userName = userName
	a.creds = creds
	a.keys = nil

	if !creds.Verified {
		fmt.Println("Session requires confirmation, use 'verify' with the emailed code.")
	}
	log.Printf("Login successful")
	return nil
}

// Verify submits an emailed confirmation code for the logged-in account.
func (a *App) Verify(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Not logged in")
		return nil
	}

	code, err := getSimpleText(a.reader, "Enter confirmation code", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.authService.VerifyCode(ctx, a.creds.UID, code); err != nil {
		return err
	}

	a.creds.Verified = true
	fmt.Println("Verified!")
	return nil
}

// Keys redeems the keyFetch token held since login and unwraps the account
// keys. The token is single-use, so a second call needs a fresh login.
func (a *App) Keys(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Not logged in")
		return nil
	}

	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	keys, err := a.authService.FetchKeys(ctx, a.userName, password, a.creds.KeyFetchToken)
	if err != nil {
		return err
	}

	a.keys = keys
	fmt.Printf("kA: %s\n", hex.EncodeToString(keys.KA))
	fmt.Printf("kB: %s\n", hex.EncodeToString(keys.KB))
	return nil
}

// ChangePassword rewraps the class-B key under a new password.
func (a *App) ChangePassword(ctx context.Context) error {
	userName := a.userName
	if userName == "" {
		var err error
		userName, err = getSimpleText(a.reader, "Enter email", os.Stdout)
		if err != nil {
			return err
		}
	}

	oldPassword, err := getPassword(os.Stdout, "Enter current password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(oldPassword)

	newPassword, err := getPassword(os.Stdout, "Enter new password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(newPassword)

	if err := a.authService.ChangePassword(ctx, userName, oldPassword, newPassword); err != nil {
		return err
	}

	a.creds = nil
	a.keys = nil
	fmt.Println("Password changed. All sessions were revoked, please log in again.")
	return nil
}

// ForgotPassword runs the recovery flow: a code is mailed, then traded
// together with new credentials for an account reset. Data encrypted under
// the old class-B key is lost.
func (a *App) ForgotPassword(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	info, err := a.authService.SendRecoveryCode(ctx, userName)
	if err != nil {
		return err
	}

	fmt.Printf("Recovery code sent (%d tries, valid for %s).\n", info.Tries, info.TTL)

	code, err := getSimpleText(a.reader, "Enter recovery code", os.Stdout)
	if err != nil {
		return err
	}

	newPassword, err := getPassword(os.Stdout, "Enter new password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(newPassword)

	if err := a.authService.ResetPassword(ctx, info.ForgotToken, code, userName, newPassword); err != nil {
		return err
	}

	a.creds = nil
	a.keys = nil
	fmt.Println("Account reset. Note that previously encrypted data is unrecoverable.")
	return nil
}

// Logout destroys the server-side session and drops local state.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	a.userName = ""
	a.creds = nil
	a.keys = nil
	return nil
}
