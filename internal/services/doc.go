// Package services contains the application services driven by the CLI:
// account signup and login, and the entry lifecycle including image
// attachment.
package services
