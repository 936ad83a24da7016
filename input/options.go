package input

// Options holds the raw flag values that BuildRequest turns into a
// Request. HasData and HasJSON record whether the flag appeared at
// all, because an explicitly empty value is still a value.
type Options struct {
	Method  string
	Data    string
	HasData bool
	JSON    string
	HasJSON bool
}
