package hdd

import "github.com/aledsdavies/picireny/pierrors"

func unknownPhaseError(name string) error {
	return pierrors.New(pierrors.KindInconsistency, "hdd: unknown phase preset "+name)
}
