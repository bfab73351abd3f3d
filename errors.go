package min

// BadAtomAccess is returned when an atom is read as a type it does not hold.
type BadAtomAccess struct{}

func (BadAtomAccess) Error() string {
	return "bad atom access"
}

// ErrBadAtomAccess is the only BadAtomAccess value.
var ErrBadAtomAccess error = BadAtomAccess{}
