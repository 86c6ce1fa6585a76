package hdf5

// Scalar ABI types of the HDF5 C interface. Pointer-typed C parameters
// (buffers, out-parameters, callbacks) are passed as uintptr throughout,
// following the purego calling convention; const char* parameters are
// passed as Go strings and converted by purego.
type (
	// Hid identifies an HDF5 object (hid_t).
	Hid = int64
	// Herr is the HDF5 status return type (herr_t); negative means failure.
	Herr = int32
	// Htri is the HDF5 tri-state return type (htri_t); positive true,
	// zero false, negative failure.
	Htri = int32
	// Hsize is an unsigned size or dimension (hsize_t).
	Hsize = uint64
	// Hssize is a signed size (hssize_t).
	Hssize = int64
	// Haddr is an address within an HDF5 file (haddr_t).
	Haddr = uint64
	// Hbool is the HDF5 boolean type (hbool_t).
	Hbool = uint32
)

// Well-known constants from the HDF5 headers.
const (
	// InvalidHid is the sentinel identifier (H5I_INVALID_HID). Global
	// constant cells report it permanently when their backing symbol is
	// absent or unreadable.
	InvalidHid Hid = -1

	// DefaultPlist is the default property list (H5P_DEFAULT).
	DefaultPlist Hid = 0

	// DefaultEstack is the default error stack (H5E_DEFAULT).
	DefaultEstack Hid = 0

	// AllSpace selects an entire dataspace (H5S_ALL).
	AllSpace Hid = 0

	// UndefinedAddr is the undefined file address (HADDR_UNDEF).
	UndefinedAddr Haddr = ^Haddr(0)
)

// File access flags (H5F_ACC_*).
const (
	AccRdonly    uint32 = 0x0000
	AccRdwr      uint32 = 0x0001
	AccTrunc     uint32 = 0x0002
	AccExcl      uint32 = 0x0004
	AccSwmrWrite uint32 = 0x0020
	AccSwmrRead  uint32 = 0x0040
)

// Object type filters for H5Fget_obj_count (H5F_OBJ_*).
const (
	ObjFile     uint32 = 0x0001
	ObjDataset  uint32 = 0x0002
	ObjGroup    uint32 = 0x0004
	ObjDatatype uint32 = 0x0008
	ObjAttr     uint32 = 0x0010
	ObjAll      uint32 = ObjFile | ObjDataset | ObjGroup | ObjDatatype | ObjAttr
)

// Flush scopes (H5F_SCOPE_*).
const (
	ScopeLocal  int32 = 0
	ScopeGlobal int32 = 1
)

// Dataspace classes (H5S_class_t).
const (
	SpaceScalar int32 = 0
	SpaceSimple int32 = 1
	SpaceNull   int32 = 2
)

// Selection operators (H5S_seloper_t).
const (
	SelectSet  int32 = 0
	SelectOr   int32 = 1
	SelectAnd  int32 = 2
	SelectXor  int32 = 3
	SelectNotB int32 = 4
	SelectNotA int32 = 5
)

// Datatype classes (H5T_class_t).
const (
	ClassInteger   int32 = 0
	ClassFloat     int32 = 1
	ClassTime      int32 = 2
	ClassString    int32 = 3
	ClassBitfield  int32 = 4
	ClassOpaque    int32 = 5
	ClassCompound  int32 = 6
	ClassReference int32 = 7
	ClassEnum      int32 = 8
	ClassVlen      int32 = 9
	ClassArray     int32 = 10
)

// Filter identifiers (H5Z_filter_t).
const (
	FilterDeflate     int32 = 1
	FilterShuffle     int32 = 2
	FilterFletcher32  int32 = 3
	FilterSzip        int32 = 4
	FilterNbit        int32 = 5
	FilterScaleoffset int32 = 6
)
