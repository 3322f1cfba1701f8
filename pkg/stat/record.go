package stat

import (
	"time"
)

// Record is a structured, serializable representation of a Status. Unknown
// values are represented as nil pointers.
type Record struct {
	Path             string    `json:"path" yaml:"path"`
	AccessTime       time.Time `json:"atime" yaml:"atime"`
	ChangeTime       time.Time `json:"ctime" yaml:"ctime"`
	ModificationTime time.Time `json:"mtime" yaml:"mtime"`
	Size             uint64    `json:"size" yaml:"size"`
	BlockSize        *uint64   `json:"blksize" yaml:"blksize"`
	Blocks           *uint64   `json:"blocks" yaml:"blocks"`
	UID              uint32    `json:"uid" yaml:"uid"`
	UserSID          string    `json:"userSID" yaml:"userSID"`
	GID              uint32    `json:"gid" yaml:"gid"`
	GroupSID         string    `json:"groupSID" yaml:"groupSID"`
	Owned            bool      `json:"owned" yaml:"owned"`
	GroupOwned       bool      `json:"grpowned" yaml:"grpowned"`
	Links            uint32    `json:"nlink" yaml:"nlink"`
	Device           *uint32   `json:"dev" yaml:"dev"`
	Inode            *uint64   `json:"ino" yaml:"ino"`
	RDev             int       `json:"rdev" yaml:"rdev"`
	Mode             string    `json:"mode" yaml:"mode"`
	FileType         string    `json:"ftype" yaml:"ftype"`
	Archive          bool      `json:"archive" yaml:"archive"`
	Compressed       bool      `json:"compressed" yaml:"compressed"`
	Directory        bool      `json:"directory" yaml:"directory"`
	Encrypted        bool      `json:"encrypted" yaml:"encrypted"`
	Hidden           bool      `json:"hidden" yaml:"hidden"`
	ContentIndexed   bool      `json:"indexed" yaml:"indexed"`
	Normal           bool      `json:"normal" yaml:"normal"`
	Offline          bool      `json:"offline" yaml:"offline"`
	Readonly         bool      `json:"readonly" yaml:"readonly"`
	ReparsePoint     bool      `json:"reparsePoint" yaml:"reparsePoint"`
	Sparse           bool      `json:"sparse" yaml:"sparse"`
	System           bool      `json:"system" yaml:"system"`
	Temporary        bool      `json:"temporary" yaml:"temporary"`
	BlockDevice      bool      `json:"blockdev" yaml:"blockdev"`
	CharacterDevice  bool      `json:"chardev" yaml:"chardev"`
	Regular          bool      `json:"file" yaml:"file"`
	Pipe             bool      `json:"pipe" yaml:"pipe"`
	Symlink          bool      `json:"symlink" yaml:"symlink"`
	LinkTarget       string    `json:"linkTarget,omitempty" yaml:"linkTarget,omitempty"`
	Executable       bool      `json:"executable" yaml:"executable"`
}

// Record creates a structured representation of the status.
func (s *Status) Record() *Record {
	record := &Record{
		Path:             s.path,
		AccessTime:       s.accessTime,
		ChangeTime:       s.changeTime,
		ModificationTime: s.modificationTime,
		Size:             s.size,
		UID:              s.uid,
		UserSID:          s.userSID,
		GID:              s.gid,
		GroupSID:         s.groupSID,
		Owned:            s.owned,
		GroupOwned:       s.groupOwned,
		Links:            s.links,
		RDev:             s.rdev,
		Mode:             s.mode.String(),
		FileType:         s.FileType(),
		Archive:          s.flags.Archive,
		Compressed:       s.flags.Compressed,
		Directory:        s.flags.Directory,
		Encrypted:        s.flags.Encrypted,
		Hidden:           s.flags.Hidden,
		ContentIndexed:   s.flags.ContentIndexed,
		Normal:           s.flags.Normal,
		Offline:          s.flags.Offline,
		Readonly:         s.flags.Readonly,
		ReparsePoint:     s.flags.ReparsePoint,
		Sparse:           s.flags.Sparse,
		System:           s.flags.System,
		Temporary:        s.flags.Temporary,
		BlockDevice:      s.blockDevice,
		CharacterDevice:  s.CharacterDevice(),
		Regular:          s.Regular(),
		Pipe:             s.Pipe(),
		Symlink:          s.symlink,
		LinkTarget:       s.linkTarget,
		Executable:       s.executable,
	}
	if value, ok := s.BlockSize(); ok {
		record.BlockSize = &value
	}
	if value, ok := s.Blocks(); ok {
		record.Blocks = &value
	}
	if value, ok := s.Device(); ok {
		record.Device = &value
	}
	if value, ok := s.Inode(); ok {
		record.Inode = &value
	}
	return record
}
