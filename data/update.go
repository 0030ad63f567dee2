package data

import "time"

// TimesUpdateMask controls which timestamps of a status record are updated.
type TimesUpdateMask int

const (
	TimesUpdateModify TimesUpdateMask = 1 << iota // Update ModifyTime
	TimesUpdateAccess                             // Update AccessTime
	TimesUpdateCreate                             // Update CreateTime

	TimesUpdateAll = TimesUpdateModify | TimesUpdateAccess | TimesUpdateCreate
)

// TimesUpdate represents a partial update to the timestamps of a status record.
// Fields whose mask bit is unset are left unchanged.
type TimesUpdate struct {
	Mask       TimesUpdateMask `json:"mask"`
	ModifyTime time.Time       `json:"modify_time"`
	AccessTime time.Time       `json:"access_time"`
	CreateTime time.Time       `json:"create_time"`
}

// NewTimesUpdate builds an update from optional timestamps; nil means unchanged.
func NewTimesUpdate(modified, accessed, created *time.Time) *TimesUpdate {
	update := &TimesUpdate{}
	if modified != nil {
		update.Mask |= TimesUpdateModify
		update.ModifyTime = *modified
	}
	if accessed != nil {
		update.Mask |= TimesUpdateAccess
		update.AccessTime = *accessed
	}
	if created != nil {
		update.Mask |= TimesUpdateCreate
		update.CreateTime = *created
	}

	return update
}

// IsEmpty reports whether the update would change nothing.
func (tu *TimesUpdate) IsEmpty() bool {
	return tu.Mask&TimesUpdateAll == 0
}

// Apply applies this update to an existing status record.
// It reports whether the target was modified.
func (tu *TimesUpdate) Apply(target *FileStatus) bool {
	modified := false

	if tu.Mask&TimesUpdateModify != 0 {
		target.ModifyTime = tu.ModifyTime
		modified = true
	}
	if tu.Mask&TimesUpdateAccess != 0 {
		target.AccessTime = tu.AccessTime
		modified = true
	}
	if tu.Mask&TimesUpdateCreate != 0 {
		target.CreateTime = tu.CreateTime
		modified = true
	}

	return modified
}
