package hdf5

import (
	"sync"
	"unsafe"

	"github.com/sirupsen/logrus"
)

// GlobalHid is a lazily-computed, immutable-after-first-read cell holding
// an identifier the library allocates during its own initialization
// (datatype identifiers, property-list class identifiers, error classes).
// These live in global data symbols with a _g suffix and are meaningless
// until H5open has run, so the first Value call triggers initialization,
// resolves the data symbol once, and dereferences it. If the symbol is
// absent or initialization failed, the cell reports InvalidHid forever;
// the failure cannot become transient within a process lifetime, so there
// is no retry.
type GlobalHid struct {
	name string
	once sync.Once
	id   Hid
}

// Name returns the underlying data-symbol name.
func (g *GlobalHid) Name() string { return g.name }

// Value returns the identifier, computing it on first use. All callers
// racing on the first read observe the same result.
func (g *GlobalHid) Value() Hid {
	g.once.Do(func() {
		g.id = InvalidHid
		if err := lib.ensure(); err != nil {
			logrus.WithField("symbol", g.name).Debugf("hdf5: global unavailable: %v", err)
			return
		}
		addr, err := lib.resolve(g.name)
		if err != nil {
			logrus.WithField("symbol", g.name).Debug("hdf5: global data symbol absent")
			return
		}
		g.id = *(*Hid)(unsafe.Pointer(addr))
	})
	return g.id
}

// globalCells tracks every cell for catalogue introspection.
var globalCells []*GlobalHid

func newGlobal(name string) *GlobalHid {
	g := &GlobalHid{name: name}
	globalCells = append(globalCells, g)
	return g
}

// Native datatype identifiers (H5T_NATIVE_*).
var (
	H5T_NATIVE_SCHAR  = newGlobal("H5T_NATIVE_SCHAR_g")
	H5T_NATIVE_UCHAR  = newGlobal("H5T_NATIVE_UCHAR_g")
	H5T_NATIVE_SHORT  = newGlobal("H5T_NATIVE_SHORT_g")
	H5T_NATIVE_USHORT = newGlobal("H5T_NATIVE_USHORT_g")
	H5T_NATIVE_INT    = newGlobal("H5T_NATIVE_INT_g")
	H5T_NATIVE_UINT   = newGlobal("H5T_NATIVE_UINT_g")
	H5T_NATIVE_LONG   = newGlobal("H5T_NATIVE_LONG_g")
	H5T_NATIVE_ULONG  = newGlobal("H5T_NATIVE_ULONG_g")
	H5T_NATIVE_LLONG  = newGlobal("H5T_NATIVE_LLONG_g")
	H5T_NATIVE_ULLONG = newGlobal("H5T_NATIVE_ULLONG_g")
	H5T_NATIVE_FLOAT  = newGlobal("H5T_NATIVE_FLOAT_g")
	H5T_NATIVE_DOUBLE = newGlobal("H5T_NATIVE_DOUBLE_g")
	H5T_NATIVE_INT8   = newGlobal("H5T_NATIVE_INT8_g")
	H5T_NATIVE_UINT8  = newGlobal("H5T_NATIVE_UINT8_g")
	H5T_NATIVE_INT16  = newGlobal("H5T_NATIVE_INT16_g")
	H5T_NATIVE_UINT16 = newGlobal("H5T_NATIVE_UINT16_g")
	H5T_NATIVE_INT32  = newGlobal("H5T_NATIVE_INT32_g")
	H5T_NATIVE_UINT32 = newGlobal("H5T_NATIVE_UINT32_g")
	H5T_NATIVE_INT64  = newGlobal("H5T_NATIVE_INT64_g")
	H5T_NATIVE_UINT64 = newGlobal("H5T_NATIVE_UINT64_g")
	H5T_NATIVE_HSIZE  = newGlobal("H5T_NATIVE_HSIZE_g")
	H5T_NATIVE_HSSIZE = newGlobal("H5T_NATIVE_HSSIZE_g")
	H5T_NATIVE_HERR   = newGlobal("H5T_NATIVE_HERR_g")
	H5T_NATIVE_HBOOL  = newGlobal("H5T_NATIVE_HBOOL_g")
	H5T_NATIVE_OPAQUE = newGlobal("H5T_NATIVE_OPAQUE_g")
)

// Standard fixed-width datatype identifiers (H5T_STD_*).
var (
	H5T_STD_I8LE  = newGlobal("H5T_STD_I8LE_g")
	H5T_STD_I8BE  = newGlobal("H5T_STD_I8BE_g")
	H5T_STD_I16LE = newGlobal("H5T_STD_I16LE_g")
	H5T_STD_I16BE = newGlobal("H5T_STD_I16BE_g")
	H5T_STD_I32LE = newGlobal("H5T_STD_I32LE_g")
	H5T_STD_I32BE = newGlobal("H5T_STD_I32BE_g")
	H5T_STD_I64LE = newGlobal("H5T_STD_I64LE_g")
	H5T_STD_I64BE = newGlobal("H5T_STD_I64BE_g")
	H5T_STD_U8LE  = newGlobal("H5T_STD_U8LE_g")
	H5T_STD_U8BE  = newGlobal("H5T_STD_U8BE_g")
	H5T_STD_U16LE = newGlobal("H5T_STD_U16LE_g")
	H5T_STD_U16BE = newGlobal("H5T_STD_U16BE_g")
	H5T_STD_U32LE = newGlobal("H5T_STD_U32LE_g")
	H5T_STD_U32BE = newGlobal("H5T_STD_U32BE_g")
	H5T_STD_U64LE = newGlobal("H5T_STD_U64LE_g")
	H5T_STD_U64BE = newGlobal("H5T_STD_U64BE_g")

	H5T_IEEE_F32LE = newGlobal("H5T_IEEE_F32LE_g")
	H5T_IEEE_F32BE = newGlobal("H5T_IEEE_F32BE_g")
	H5T_IEEE_F64LE = newGlobal("H5T_IEEE_F64LE_g")
	H5T_IEEE_F64BE = newGlobal("H5T_IEEE_F64BE_g")

	H5T_C_S1            = newGlobal("H5T_C_S1_g")
	H5T_STD_REF_OBJ     = newGlobal("H5T_STD_REF_OBJ_g")
	H5T_STD_REF_DSETREG = newGlobal("H5T_STD_REF_DSETREG_g")
)

// Property-list class identifiers (H5P_CLS_*).
var (
	H5P_CLS_ROOT             = newGlobal("H5P_CLS_ROOT_ID_g")
	H5P_CLS_FILE_CREATE      = newGlobal("H5P_CLS_FILE_CREATE_ID_g")
	H5P_CLS_FILE_ACCESS      = newGlobal("H5P_CLS_FILE_ACCESS_ID_g")
	H5P_CLS_DATASET_CREATE   = newGlobal("H5P_CLS_DATASET_CREATE_ID_g")
	H5P_CLS_DATASET_ACCESS   = newGlobal("H5P_CLS_DATASET_ACCESS_ID_g")
	H5P_CLS_DATASET_XFER     = newGlobal("H5P_CLS_DATASET_XFER_ID_g")
	H5P_CLS_GROUP_CREATE     = newGlobal("H5P_CLS_GROUP_CREATE_ID_g")
	H5P_CLS_GROUP_ACCESS     = newGlobal("H5P_CLS_GROUP_ACCESS_ID_g")
	H5P_CLS_LINK_CREATE      = newGlobal("H5P_CLS_LINK_CREATE_ID_g")
	H5P_CLS_LINK_ACCESS      = newGlobal("H5P_CLS_LINK_ACCESS_ID_g")
	H5P_CLS_OBJECT_CREATE    = newGlobal("H5P_CLS_OBJECT_CREATE_ID_g")
	H5P_CLS_OBJECT_COPY      = newGlobal("H5P_CLS_OBJECT_COPY_ID_g")
	H5P_CLS_ATTRIBUTE_CREATE = newGlobal("H5P_CLS_ATTRIBUTE_CREATE_ID_g")
	H5P_CLS_STRING_CREATE    = newGlobal("H5P_CLS_STRING_CREATE_ID_g")
)

// Error class identifier (H5E).
var H5E_ERR_CLS = newGlobal("H5E_ERR_CLS_g")
