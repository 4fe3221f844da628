// Package platform contains OS integration used by the player window:
// revealing a track in the system file manager.
package platform
