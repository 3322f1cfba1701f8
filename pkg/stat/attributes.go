package stat

// Attributes is a native file attribute bitmask.
type Attributes uint32

// Native attribute bits (FILE_ATTRIBUTE_*).
const (
	// AttributeReadonly marks read-only files.
	AttributeReadonly Attributes = 0x00000001
	// AttributeHidden marks hidden files.
	AttributeHidden Attributes = 0x00000002
	// AttributeSystem marks operating system files.
	AttributeSystem Attributes = 0x00000004
	// AttributeDirectory marks directories.
	AttributeDirectory Attributes = 0x00000010
	// AttributeArchive marks files for archiving.
	AttributeArchive Attributes = 0x00000020
	// AttributeEncrypted marks encrypted files.
	AttributeEncrypted Attributes = 0x00000040
	// AttributeNormal marks files with no other attributes.
	AttributeNormal Attributes = 0x00000080
	// AttributeTemporary marks temporary files.
	AttributeTemporary Attributes = 0x00000100
	// AttributeSparseFile marks sparse files.
	AttributeSparseFile Attributes = 0x00000200
	// AttributeReparsePoint marks reparse points.
	AttributeReparsePoint Attributes = 0x00000400
	// AttributeCompressed marks compressed files.
	AttributeCompressed Attributes = 0x00000800
	// AttributeOffline marks files whose data isn't immediately available.
	AttributeOffline Attributes = 0x00001000
	// AttributeNotContentIndexed marks files excluded from content indexing.
	AttributeNotContentIndexed Attributes = 0x00002000
)

// Flags is the decomposition of an attribute bitmask into named booleans.
type Flags struct {
	// Archive indicates that the file is marked for archiving.
	Archive bool
	// Compressed indicates that the file is compressed.
	Compressed bool
	// Directory indicates that the file is a directory.
	Directory bool
	// Encrypted indicates that the file is encrypted.
	Encrypted bool
	// Hidden indicates that the file is hidden.
	Hidden bool
	// ContentIndexed indicates that the not-content-indexed bit is clear.
	ContentIndexed bool
	// Normal indicates that no other attributes are set.
	Normal bool
	// Offline indicates that the file's data isn't immediately available.
	Offline bool
	// Readonly indicates that the file is read-only.
	Readonly bool
	// ReparsePoint indicates that the file is a reparse point.
	ReparsePoint bool
	// Sparse indicates that the file is sparse.
	Sparse bool
	// System indicates that the file is used by the operating system.
	System bool
	// Temporary indicates that the file is marked as temporary.
	Temporary bool
}

// Classify decomposes an attribute bitmask into flags. A file is considered
// content-indexed when the not-content-indexed bit is clear.
func Classify(attributes Attributes) Flags {
	return Flags{
		Archive:        attributes&AttributeArchive != 0,
		Compressed:     attributes&AttributeCompressed != 0,
		Directory:      attributes&AttributeDirectory != 0,
		Encrypted:      attributes&AttributeEncrypted != 0,
		Hidden:         attributes&AttributeHidden != 0,
		ContentIndexed: attributes&AttributeNotContentIndexed == 0,
		Normal:         attributes&AttributeNormal != 0,
		Offline:        attributes&AttributeOffline != 0,
		Readonly:       attributes&AttributeReadonly != 0,
		ReparsePoint:   attributes&AttributeReparsePoint != 0,
		Sparse:         attributes&AttributeSparseFile != 0,
		System:         attributes&AttributeSystem != 0,
		Temporary:      attributes&AttributeTemporary != 0,
	}
}
