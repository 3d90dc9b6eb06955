package member

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind tells fields from methods.
type Kind int

const (
	_ Kind = iota // zero is not a valid kind

	KindField
	KindMethod
)
