package source

import "io"

// Plain passes the input through unchanged.
type Plain struct{}

func (p *Plain) Extract(r io.Reader) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
