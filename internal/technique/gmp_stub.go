//go:build !gmp

package technique

import "errors"

// errGMPUnavailable is returned by the gmp constructor in builds without the
// gmp tag. The registry converts it into a RegistrationError so the report
// shows the technique as unavailable instead of dropping it.
var errGMPUnavailable = errors.New("built without gmp support (requires libgmp and -tags=gmp)")

// newGMP reports the gmp technique as unavailable in this build.
func newGMP() (Technique, error) {
	return nil, errGMPUnavailable
}
