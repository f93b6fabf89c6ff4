package errcode

// Code is a stable error identifier for register-level failures.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK Code = "ok"

	// Configuration rejected before any register is touched.
	InvalidConfig Code = "invalid_config"
	InvalidField  Code = "invalid_field"
	OutOfRange    Code = "out_of_range"
	ReadOnly      Code = "read_only"

	// Identity / ownership
	UnknownPin Code = "unknown_pin"
	PinInUse   Code = "pin_in_use"

	// The peripheral-ready bit never came up within the retry budget.
	HardwareNotReady Code = "hw_not_ready"

	// Bus-level (i2cbb)
	NoAck Code = "no_ack"

	Error Code = "error" // generic fallback
)

// Optional wrapper when we want to keep context and a cause.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	if e.Msg != "" {
		return string(e.C) + ": " + e.Msg
	}
	return string(e.C)
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Of extracts a Code from an error, defaulting to Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	if c, ok := err.(Code); ok {
		return c
	}
	type coder interface{ Code() Code }
	if x, ok := err.(coder); ok {
		return x.Code()
	}
	return Error
}
