package commands

import (
	"fmt"

	"photofolio/cli/app"
	"photofolio/cli/commands/auth"
	"photofolio/cli/commands/auth/google"
	"photofolio/cli/commands/auth/login"
	"photofolio/cli/commands/auth/logout"
	"photofolio/cli/commands/auth/signup"
	"photofolio/cli/commands/images"
	"photofolio/cli/commands/library"
	"photofolio/cli/commands/tree"
	"photofolio/cli/commands/upload"
	"photofolio/cli/styles"
	"photofolio/cli/utils"
	"photofolio/shared/constants"
)

type Command string

const (
	Auth    Command = "auth"
	Signup  Command = "signup"
	Login   Command = "login"
	Google  Command = "google"
	Logout  Command = "logout"
	Library Command = "library"
	Tree    Command = "tree"
	Images  Command = "images"
	Upload  Command = "upload"
	Version Command = "version"
	Help    Command = "help"
)

type viewFunc func(a *app.App, args []string)

var CommandMap = map[Command][]viewFunc{
	Auth: {func(a *app.App, _ []string) { auth.ShowAuthModel(a) }},
	Signup: {func(a *app.App, _ []string) {
		if signup.ShowSignupModel(a) {
			login.ShowLoginModel(a)
		}
	}},
	Login:   {func(a *app.App, _ []string) { login.ShowLoginModel(a) }},
	Google:  {func(a *app.App, _ []string) { google.ShowGoogleModel(a) }},
	Logout:  {func(a *app.App, _ []string) { logout.ShowLogoutModel(a) }},
	Library: {func(a *app.App, _ []string) { library.ShowLibraryModel(a) }},
	Tree:    {tree.ShowTree},
	Images:  {images.ShowImages},
	Upload:  {upload.ShowUpload},
	Version: {func(*app.App, []string) { fmt.Println("photofolio", constants.VERSION) }},
	Help:    {func(*app.App, []string) { printHelp() }},
}

// interactive commands need a terminal for their forms.
var interactive = map[Command]bool{
	Auth:    true,
	Signup:  true,
	Login:   true,
	Google:  true,
	Library: true,
}

var AuthHelp = []string{
	fmt.Sprintf("%s | Create a new photofolio account", Signup),
	fmt.Sprintf("%s  | Log into your photofolio account", Login),
	fmt.Sprintf("%s | Log in with a Google account (also connects Drive)", Google),
	fmt.Sprintf("%s | Log out of your photofolio account", Logout),
}

var ActionHelp = []string{
	fmt.Sprintf("%s | Browse, upload, share and import images\n"+
		"            - Example: photofolio library", Library),
	fmt.Sprintf("%s    | Print your folder tree and the folders shared with you", Tree),
	fmt.Sprintf("%s  | List the images of a folder\n"+
		"            - Example: photofolio images 12 --year 2024 --keyword beach", Images),
	fmt.Sprintf("%s  | Upload image files to a folder\n"+
		"            - Example: photofolio upload 12 a.jpg b.png", Upload),
}

var HelpMsg = `
Usage: photofolio <command> [args]
`

var CommandHelpStr = `
  %s`

func printHelp() {
	msg := HelpMsg + `
Auth Commands:`
	for _, line := range AuthHelp {
		msg += fmt.Sprintf(CommandHelpStr, line)
	}

	msg += `

Action Commands:`
	for _, line := range ActionHelp {
		msg += fmt.Sprintf(CommandHelpStr, line)
	}

	fmt.Println(msg)
	fmt.Println()
}

// resolve picks the command to run for args. Without a command, signed out
// users get the auth menu and signed in users the library.
func resolve(args []string, authenticated bool) Command {
	if len(args) >= 2 {
		return Command(args[1])
	} else if authenticated {
		return Library
	}

	return Auth
}

// isAuthCommand checks if the provided command is related to authentication
func isAuthCommand(cmd Command) bool {
	return cmd == Login || cmd == Signup || cmd == Google || cmd == Logout || cmd == Auth
}

// Entrypoint is the main entrypoint to the CLI
func Entrypoint(args []string) {
	if len(args) >= 2 {
		command := Command(args[1])
		if _, ok := CommandMap[command]; !ok {
			styles.PrintErrStr(fmt.Sprintf("-- Invalid command '%s'", command))
			printHelp()
			return
		} else if command == Help || command == Version {
			CommandMap[command][0](nil, nil)
			return
		}
	}

	a, err := app.New()
	utils.HandleCLIError("Error initializing CLI tool", err)
	defer a.Close()

	command := resolve(args, a.Authenticated())
	if !isAuthCommand(command) && !a.Authenticated() {
		styles.PrintErrStr("You are not logged in. " +
			"Use the 'login' or 'signup' commands to continue.")
		return
	} else if interactive[command] && !utils.IsInteractive() {
		styles.PrintErrStr(fmt.Sprintf("'%s' needs an interactive terminal", command))
		return
	}

	var rest []string
	if len(args) > 2 {
		rest = args[2:]
	}

	for _, viewFunction := range CommandMap[command] {
		viewFunction(a, rest)
	}

	// the auth menu continues into the library once signed in
	if len(args) < 2 && command == Auth && a.Authenticated() {
		library.ShowLibraryModel(a)
	}
}
