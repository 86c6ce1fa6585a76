package hdf5

// Typed entry points of the binding. Every variable below is a Go
// function whose calling convention matches the corresponding HDF5 C
// function exactly; pointer parameters are uintptr, const char*
// parameters are Go strings. Required entry points are registered during
// Initialize and are callable as soon as it returns nil. Optional
// (version-gated) entry points stay nil when the loaded library does not
// provide them; check Available before calling.
//
// Which variables are required, optional, and version-gated is defined
// by the catalogue in symbols.go.

// Core library control (H5).
var (
	H5open                  func() Herr
	H5close                 func() Herr
	H5dont_atexit           func() Herr
	H5free_memory           func(buf uintptr) Herr
	H5get_libversion        func(majnum, minnum, relnum uintptr) Herr
	H5is_library_threadsafe func(isThreadsafe uintptr) Herr
)

// Error stack (H5E).
var (
	H5Eset_auto2         func(estack Hid, fn, clientData uintptr) Herr
	H5Eclear2            func(estack Hid) Herr
	H5Eget_current_stack func() Hid
	H5Eclose_stack       func(estack Hid) Herr
	H5Eget_msg           func(msg Hid, msgType, buf, size uintptr) Hssize
	H5Ewalk2             func(estack Hid, direction int32, fn, clientData uintptr) Herr
	H5Eprint2            func(estack Hid, stream uintptr) Herr
)

// Files (H5F).
var (
	H5Fcreate            func(name string, flags uint32, fcpl, fapl Hid) Hid
	H5Fopen              func(name string, flags uint32, fapl Hid) Hid
	H5Fclose             func(file Hid) Herr
	H5Fflush             func(obj Hid, scope int32) Herr
	H5Fget_name          func(obj Hid, name uintptr, size uintptr) Hssize
	H5Fget_filesize      func(file Hid, size uintptr) Herr
	H5Fget_intent        func(file Hid, intent uintptr) Herr
	H5Fget_access_plist  func(file Hid) Hid
	H5Fget_create_plist  func(file Hid) Hid
	H5Fget_obj_count     func(file Hid, types uint32) Hssize
	H5Fget_freespace     func(file Hid) Hssize
	H5Fstart_swmr_write  func(file Hid) Herr
)

// Groups (H5G).
var (
	H5Gcreate2          func(loc Hid, name string, lcpl, gcpl, gapl Hid) Hid
	H5Gopen2            func(loc Hid, name string, gapl Hid) Hid
	H5Gclose            func(group Hid) Herr
	H5Gget_info         func(group Hid, info uintptr) Herr
	H5Gget_create_plist func(group Hid) Hid
)

// Datasets (H5D).
var (
	H5Dcreate2          func(loc Hid, name string, dtype, space, lcpl, dcpl, dapl Hid) Hid
	H5Dopen2            func(loc Hid, name string, dapl Hid) Hid
	H5Dclose            func(dset Hid) Herr
	H5Dread             func(dset, memType, memSpace, fileSpace, xfer Hid, buf uintptr) Herr
	H5Dwrite            func(dset, memType, memSpace, fileSpace, xfer Hid, buf uintptr) Herr
	H5Dget_space        func(dset Hid) Hid
	H5Dget_type         func(dset Hid) Hid
	H5Dget_create_plist func(dset Hid) Hid
	H5Dget_storage_size func(dset Hid) Hsize
	H5Dget_offset       func(dset Hid) Haddr
	H5Dset_extent       func(dset Hid, size uintptr) Herr
	H5Dflush            func(dset Hid) Herr
	H5Dget_num_chunks   func(dset, fspace Hid, nchunks uintptr) Herr
	H5Dget_chunk_info   func(dset, fspace Hid, index Hsize, offset, filterMask, addr, size uintptr) Herr
)

// Dataspaces (H5S).
var (
	H5Screate                    func(class int32) Hid
	H5Screate_simple             func(rank int32, dims, maxdims uintptr) Hid
	H5Sclose                     func(space Hid) Herr
	H5Scopy                      func(space Hid) Hid
	H5Sget_simple_extent_ndims   func(space Hid) int32
	H5Sget_simple_extent_dims    func(space Hid, dims, maxdims uintptr) int32
	H5Sget_simple_extent_npoints func(space Hid) Hssize
	H5Sselect_hyperslab          func(space Hid, op int32, start, stride, count, block uintptr) Herr
	H5Sselect_elements           func(space Hid, op int32, numElem uintptr, coord uintptr) Herr
	H5Sselect_all                func(space Hid) Herr
	H5Sselect_none               func(space Hid) Herr
	H5Sselect_valid              func(space Hid) Htri
	H5Sget_select_npoints        func(space Hid) Hssize
	H5Sget_select_type           func(space Hid) int32
)

// Datatypes (H5T).
var (
	H5Tcopy              func(dtype Hid) Hid
	H5Tclose             func(dtype Hid) Herr
	H5Tequal             func(a, b Hid) Htri
	H5Tcreate            func(class int32, size uintptr) Hid
	H5Tcommit2           func(loc Hid, name string, dtype, lcpl, tcpl, tapl Hid) Herr
	H5Tcommitted         func(dtype Hid) Htri
	H5Tget_class         func(dtype Hid) int32
	H5Tget_size          func(dtype Hid) uintptr
	H5Tset_size          func(dtype Hid, size uintptr) Herr
	H5Tget_order         func(dtype Hid) int32
	H5Tset_order         func(dtype Hid, order int32) Herr
	H5Tget_sign          func(dtype Hid) int32
	H5Tget_precision     func(dtype Hid) uintptr
	H5Tinsert            func(dtype Hid, name string, offset uintptr, member Hid) Herr
	H5Tget_nmembers      func(dtype Hid) int32
	H5Tget_member_name   func(dtype Hid, index uint32) uintptr
	H5Tget_member_type   func(dtype Hid, index uint32) Hid
	H5Tget_member_offset func(dtype Hid, index uint32) uintptr
	H5Tget_member_value  func(dtype Hid, index uint32, value uintptr) Herr
	H5Tget_native_type   func(dtype Hid, direction int32) Hid
	H5Tget_super         func(dtype Hid) Hid
	H5Tarray_create2     func(base Hid, ndims uint32, dims uintptr) Hid
	H5Tget_array_ndims   func(dtype Hid) int32
	H5Tget_array_dims2   func(dtype Hid, dims uintptr) int32
	H5Tvlen_create       func(base Hid) Hid
	H5Tenum_create       func(base Hid) Hid
	H5Tenum_insert       func(dtype Hid, name string, value uintptr) Herr
	H5Tis_variable_str   func(dtype Hid) Htri
	H5Tget_cset          func(dtype Hid) int32
	H5Tset_cset          func(dtype Hid, cset int32) Herr
	H5Tset_strpad        func(dtype Hid, strpad int32) Herr
	H5Tcompiler_conv     func(src, dst Hid) Htri
)

// Attributes (H5A).
var (
	H5Acreate2          func(loc Hid, name string, dtype, space, acpl, aapl Hid) Hid
	H5Aopen             func(obj Hid, name string, aapl Hid) Hid
	H5Aclose            func(attr Hid) Herr
	H5Aread             func(attr, memType Hid, buf uintptr) Herr
	H5Awrite            func(attr, memType Hid, buf uintptr) Herr
	H5Adelete           func(loc Hid, name string) Herr
	H5Aexists           func(obj Hid, name string) Htri
	H5Aget_name         func(attr Hid, size uintptr, buf uintptr) Hssize
	H5Aget_space        func(attr Hid) Hid
	H5Aget_type         func(attr Hid) Hid
	H5Aget_storage_size func(attr Hid) Hsize
	H5Aiterate2         func(obj Hid, idxType, order int32, idx, op, opData uintptr) Herr
)

// Identifiers (H5I).
var (
	H5Iget_type    func(id Hid) int32
	H5Iis_valid    func(id Hid) Htri
	H5Iinc_ref     func(id Hid) int32
	H5Idec_ref     func(id Hid) int32
	H5Iget_ref     func(id Hid) int32
	H5Iget_name    func(id Hid, name uintptr, size uintptr) Hssize
	H5Iget_file_id func(id Hid) Hid
)

// Links (H5L).
var (
	H5Lexists          func(loc Hid, name string, lapl Hid) Htri
	H5Ldelete          func(loc Hid, name string, lapl Hid) Herr
	H5Lmove            func(srcLoc Hid, srcName string, dstLoc Hid, dstName string, lcpl, lapl Hid) Herr
	H5Lcreate_hard     func(curLoc Hid, curName string, dstLoc Hid, dstName string, lcpl, lapl Hid) Herr
	H5Lcreate_soft     func(target string, loc Hid, name string, lcpl, lapl Hid) Herr
	H5Lcreate_external func(fileName, objName string, loc Hid, name string, lcpl, lapl Hid) Herr
	H5Literate         func(group Hid, idxType, order int32, idx, op, opData uintptr) Herr
	H5Literate2        func(group Hid, idxType, order int32, idx, op, opData uintptr) Herr
	H5Lget_info2       func(loc Hid, name string, info uintptr, lapl Hid) Herr
)

// Objects (H5O).
var (
	H5Oopen          func(loc Hid, name string, lapl Hid) Hid
	H5Oopen_by_addr  func(loc Hid, addr Haddr) Hid
	H5Oclose         func(obj Hid) Herr
	H5Ocopy          func(srcLoc Hid, srcName string, dstLoc Hid, dstName string, ocpypl, lcpl Hid) Herr
	H5Oget_comment   func(obj Hid, comment uintptr, bufsize uintptr) Hssize
	H5Oset_comment   func(obj Hid, comment string) Herr
	H5Oget_info1     func(obj Hid, info uintptr) Herr
	H5Oget_info3     func(obj Hid, info uintptr, fields uint32) Herr
	H5Oopen_by_token func(loc Hid, token uintptr) Hid
)

// Property lists (H5P).
var (
	H5Pcreate                         func(class Hid) Hid
	H5Pclose                          func(plist Hid) Herr
	H5Pcopy                           func(plist Hid) Hid
	H5Pequal                          func(a, b Hid) Htri
	H5Pget_class                      func(plist Hid) Hid
	H5Pset_userblock                  func(plist Hid, size Hsize) Herr
	H5Pget_userblock                  func(plist Hid, size uintptr) Herr
	H5Pset_chunk                      func(plist Hid, ndims int32, dims uintptr) Herr
	H5Pget_chunk                      func(plist Hid, maxNdims int32, dims uintptr) int32
	H5Pset_chunk_cache                func(plist Hid, nslots, nbytes uintptr, w0 float64) Herr
	H5Pset_deflate                    func(plist Hid, level uint32) Herr
	H5Pset_shuffle                    func(plist Hid) Herr
	H5Pset_fletcher32                 func(plist Hid) Herr
	H5Pset_layout                     func(plist Hid, layout int32) Herr
	H5Pget_layout                     func(plist Hid) int32
	H5Pset_alloc_time                 func(plist Hid, allocTime int32) Herr
	H5Pset_fill_time                  func(plist Hid, fillTime int32) Herr
	H5Pset_fill_value                 func(plist Hid, dtype Hid, value uintptr) Herr
	H5Pset_libver_bounds              func(plist Hid, low, high int32) Herr
	H5Pset_fapl_core                  func(plist Hid, increment uintptr, backingStore Hbool) Herr
	H5Pset_fclose_degree              func(plist Hid, degree int32) Herr
	H5Pset_create_intermediate_group  func(plist Hid, crtIntermed uint32) Herr
	H5Pget_nfilters                   func(plist Hid) int32
	H5Pset_filter                     func(plist Hid, filter int32, flags uint32, cdNelmts uintptr, cdValues uintptr) Herr
	H5Pall_filters_avail              func(plist Hid) Htri
	H5Pset_obj_track_times            func(plist Hid, trackTimes Hbool) Herr
)

// References (H5R).
var (
	H5Rcreate        func(ref uintptr, loc Hid, name string, refType int32, space Hid) Herr
	H5Rdereference2  func(obj, oapl Hid, refType int32, ref uintptr) Hid
	H5Rget_obj_type2 func(loc Hid, refType int32, ref, objType uintptr) Herr
	H5Rcreate_object func(loc Hid, name string, oapl Hid, ref uintptr) Herr
	H5Ropen_object   func(ref uintptr, rapl, oapl Hid) Hid
	H5Rdestroy       func(ref uintptr) Herr
	H5Rget_obj_type3 func(ref uintptr, rapl Hid, objType uintptr) Herr
)

// Filters (H5Z).
var (
	H5Zfilter_avail    func(filter int32) Htri
	H5Zget_filter_info func(filter int32, filterConfig uintptr) Herr
	H5Zregister        func(cls uintptr) Herr
)
