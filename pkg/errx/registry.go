package errx

import (
	"fmt"
	"sync"
)

// Code is a fully qualified error code such as "VACATION.NO_BUSINESS_DAYS"
type Code string

func (c Code) String() string { return string(c) }

type definition struct {
	errType    Type
	httpStatus int
	message    string
}

// Registry holds the error codes of one domain under a common prefix
type Registry struct {
	prefix string
	mu     sync.RWMutex
	codes  map[Code]definition
}

// NewRegistry creates a registry whose codes are prefixed with prefix
func NewRegistry(prefix string) *Registry {
	return &Registry{
		prefix: prefix,
		codes:  make(map[Code]definition),
	}
}

// Register adds a code to the registry. Registering the same code twice panics,
// which surfaces copy-paste mistakes at init time.
func (r *Registry) Register(name string, errType Type, httpStatus int, message string) Code {
	code := Code(fmt.Sprintf("%s.%s", r.prefix, name))

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.codes[code]; exists {
		panic(fmt.Sprintf("errx: duplicate error code %s", code))
	}
	r.codes[code] = definition{
		errType:    errType,
		httpStatus: httpStatus,
		message:    message,
	}
	return code
}

// New builds an error instance for a registered code
func (r *Registry) New(code Code) *Error {
	r.mu.RLock()
	def, ok := r.codes[code]
	r.mu.RUnlock()

	if !ok {
		return New(fmt.Sprintf("unregistered error code %s", code), TypeInternal)
	}

	return &Error{
		Code:       code.String(),
		Type:       def.errType,
		Message:    def.message,
		HTTPStatus: def.httpStatus,
	}
}

// NewWithCause builds an error instance for code wrapping cause
func (r *Registry) NewWithCause(code Code, cause error) *Error {
	return r.New(code).WithCause(cause)
}
