// Package autostart toggles the run-on-login registration for the current
// user. On Windows this is the HKCU Run registry key; elsewhere it is an XDG
// autostart desktop entry. State is always queried from the OS store, never
// trusted from memory: another tool may have removed the entry meanwhile.
package autostart

// Name is the product key the registration is stored under.
const Name = "RunCat365"
