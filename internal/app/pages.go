package app

import (
	"github.com/vango-dev/navshell/pkg/router"
	"github.com/vango-dev/navshell/pkg/vdom"
)

// Dashboard renders the dashboard page.
func Dashboard(router.Ctx) *vdom.VNode {
	return vdom.H1("Dashboard!")
}

// About renders the about page.
func About(router.Ctx) *vdom.VNode {
	return vdom.H1("This page is about me!")
}

// Login renders the login page. The form has no action and no handler.
func Login(router.Ctx) *vdom.VNode {
	return vdom.Fragment(
		vdom.H1("Login"),
		vdom.Form(vdom.Class("login-form"),
			vdom.Label(vdom.For("username"), "Username"),
			vdom.Input(vdom.ID("username"), vdom.Name("username"), vdom.Type("text"), vdom.Autocomplete("username")),
			vdom.Label(vdom.For("password"), "Password"),
			vdom.Input(vdom.ID("password"), vdom.Name("password"), vdom.Type("password"), vdom.Autocomplete("current-password")),
			vdom.Button(vdom.Type("submit"), "Login"),
		),
	)
}
