// Package prompt asks the four scaffolding questions. The template select
// shows four labels but stores a scaffold.Variant directly, so there are only
// ever two outcomes.
package prompt
