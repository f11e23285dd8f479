// Package ui renders the console output of the wsecho commands.
//
// Output is styled with Lipgloss when written to a terminal and left as plain
// text otherwise, so the argument echo and banners keep a stable format for
// scripts that capture them:
//
//	p := ui.NewPrinter(os.Stdout)
//	p.Arguments(os.Args)
//	p.Transport(srv.Secure())
package ui
