// Package qr parses the QR payloads printed on umbrella handles.
package qr

import (
	"errors"

	"github.com/dlclark/regexp2"
)

var ErrInvalidPayload = errors.New("invalid QR payload")

// Payload format: "machikasa://umbrella/{id}".
var pattern = regexp2.MustCompile(`^machikasa://umbrella/(.+)$`, regexp2.None)

// UmbrellaID extracts the umbrella id from a scanned payload.
func UmbrellaID(payload string) (string, error) {
	m, err := pattern.FindStringMatch(payload)
	if err != nil || m == nil {
		return "", ErrInvalidPayload
	}

	return m.GroupByNumber(1).String(), nil
}

// Payload renders the QR payload for an umbrella id.
func Payload(umbrellaID string) string {
	return "machikasa://umbrella/" + umbrellaID
}
