package input

type Request struct {
	URL    string
	Method Method
	Body   Body
}

type Method string

const (
	MethodGet  Method = "GET"
	MethodPost Method = "POST"
)

type BodyType int

const (
	EmptyBody BodyType = iota
	FormBody
	JSONBody
)

type Body struct {
	BodyType BodyType
	Fields   []Field // used only when BodyType == FormBody
	RawData  string  // the --data value as typed, used only when BodyType == FormBody
	RawJSON  string  // the --json value verbatim, used only when BodyType == JSONBody
}

type Field struct {
	Name  string
	Value string
}
