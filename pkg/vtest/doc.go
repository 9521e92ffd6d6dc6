// Package vtest provides testing helpers for navshell components.
//
// The helpers render a VNode tree and assert on the resulting markup, so
// tests read as statements about HTML rather than about tree structure:
//
//	func TestDashboard(t *testing.T) {
//	    node := r.Render("/dashboard")
//	    vtest.ExpectContains(t, node, "<h1>Dashboard!</h1>")
//	    vtest.ExpectAttribute(t, node, "aria-current", "page")
//	}
//
// NewCtx builds a router.Ctx for calling layout or page content directly:
//
//	ctx := vtest.NewCtx("/login").WithOutlet(nil).Build()
package vtest
