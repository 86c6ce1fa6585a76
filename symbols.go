package hdf5

// symbol is one catalogue entry: a name the binding resolves, whether its
// absence is fatal, and for optional entries the capability predicting
// its presence at the detected library version. fn points at the typed
// entry-point variable in bindings.go that the resolved address is
// registered into. Global data symbols are catalogued separately, as
// GlobalHid cells in globals.go.
//
// Adding a function to the binding is a declaration in bindings.go plus
// one row here; there is no per-symbol code path.
type symbol struct {
	name       string
	optional   bool
	capability string
	fn         any
}

var funcSymbols = []symbol{
	// Core library control.
	{name: "H5open", fn: &H5open},
	{name: "H5close", fn: &H5close},
	{name: "H5dont_atexit", fn: &H5dont_atexit},
	{name: "H5free_memory", fn: &H5free_memory},
	{name: "H5get_libversion", fn: &H5get_libversion},
	{name: "H5is_library_threadsafe", fn: &H5is_library_threadsafe, optional: true, capability: "threadsafe-query"},

	// Error stack.
	{name: "H5Eset_auto2", fn: &H5Eset_auto2},
	{name: "H5Eclear2", fn: &H5Eclear2},
	{name: "H5Eget_current_stack", fn: &H5Eget_current_stack},
	{name: "H5Eclose_stack", fn: &H5Eclose_stack},
	{name: "H5Eget_msg", fn: &H5Eget_msg},
	{name: "H5Ewalk2", fn: &H5Ewalk2},
	{name: "H5Eprint2", fn: &H5Eprint2},

	// Files.
	{name: "H5Fcreate", fn: &H5Fcreate},
	{name: "H5Fopen", fn: &H5Fopen},
	{name: "H5Fclose", fn: &H5Fclose},
	{name: "H5Fflush", fn: &H5Fflush},
	{name: "H5Fget_name", fn: &H5Fget_name},
	{name: "H5Fget_filesize", fn: &H5Fget_filesize},
	{name: "H5Fget_intent", fn: &H5Fget_intent},
	{name: "H5Fget_access_plist", fn: &H5Fget_access_plist},
	{name: "H5Fget_create_plist", fn: &H5Fget_create_plist},
	{name: "H5Fget_obj_count", fn: &H5Fget_obj_count},
	{name: "H5Fget_freespace", fn: &H5Fget_freespace},
	{name: "H5Fstart_swmr_write", fn: &H5Fstart_swmr_write, optional: true, capability: "swmr"},

	// Groups.
	{name: "H5Gcreate2", fn: &H5Gcreate2},
	{name: "H5Gopen2", fn: &H5Gopen2},
	{name: "H5Gclose", fn: &H5Gclose},
	{name: "H5Gget_info", fn: &H5Gget_info},
	{name: "H5Gget_create_plist", fn: &H5Gget_create_plist},

	// Datasets.
	{name: "H5Dcreate2", fn: &H5Dcreate2},
	{name: "H5Dopen2", fn: &H5Dopen2},
	{name: "H5Dclose", fn: &H5Dclose},
	{name: "H5Dread", fn: &H5Dread},
	{name: "H5Dwrite", fn: &H5Dwrite},
	{name: "H5Dget_space", fn: &H5Dget_space},
	{name: "H5Dget_type", fn: &H5Dget_type},
	{name: "H5Dget_create_plist", fn: &H5Dget_create_plist},
	{name: "H5Dget_storage_size", fn: &H5Dget_storage_size},
	{name: "H5Dget_offset", fn: &H5Dget_offset},
	{name: "H5Dset_extent", fn: &H5Dset_extent},
	{name: "H5Dflush", fn: &H5Dflush, optional: true, capability: "swmr"},
	{name: "H5Dget_num_chunks", fn: &H5Dget_num_chunks, optional: true, capability: "chunk-query"},
	{name: "H5Dget_chunk_info", fn: &H5Dget_chunk_info, optional: true, capability: "chunk-query"},

	// Dataspaces.
	{name: "H5Screate", fn: &H5Screate},
	{name: "H5Screate_simple", fn: &H5Screate_simple},
	{name: "H5Sclose", fn: &H5Sclose},
	{name: "H5Scopy", fn: &H5Scopy},
	{name: "H5Sget_simple_extent_ndims", fn: &H5Sget_simple_extent_ndims},
	{name: "H5Sget_simple_extent_dims", fn: &H5Sget_simple_extent_dims},
	{name: "H5Sget_simple_extent_npoints", fn: &H5Sget_simple_extent_npoints},
	{name: "H5Sselect_hyperslab", fn: &H5Sselect_hyperslab},
	{name: "H5Sselect_elements", fn: &H5Sselect_elements},
	{name: "H5Sselect_all", fn: &H5Sselect_all},
	{name: "H5Sselect_none", fn: &H5Sselect_none},
	{name: "H5Sselect_valid", fn: &H5Sselect_valid},
	{name: "H5Sget_select_npoints", fn: &H5Sget_select_npoints},
	{name: "H5Sget_select_type", fn: &H5Sget_select_type},

	// Datatypes.
	{name: "H5Tcopy", fn: &H5Tcopy},
	{name: "H5Tclose", fn: &H5Tclose},
	{name: "H5Tequal", fn: &H5Tequal},
	{name: "H5Tcreate", fn: &H5Tcreate},
	{name: "H5Tcommit2", fn: &H5Tcommit2},
	{name: "H5Tcommitted", fn: &H5Tcommitted},
	{name: "H5Tget_class", fn: &H5Tget_class},
	{name: "H5Tget_size", fn: &H5Tget_size},
	{name: "H5Tset_size", fn: &H5Tset_size},
	{name: "H5Tget_order", fn: &H5Tget_order},
	{name: "H5Tset_order", fn: &H5Tset_order},
	{name: "H5Tget_sign", fn: &H5Tget_sign},
	{name: "H5Tget_precision", fn: &H5Tget_precision},
	{name: "H5Tinsert", fn: &H5Tinsert},
	{name: "H5Tget_nmembers", fn: &H5Tget_nmembers},
	{name: "H5Tget_member_name", fn: &H5Tget_member_name},
	{name: "H5Tget_member_type", fn: &H5Tget_member_type},
	{name: "H5Tget_member_offset", fn: &H5Tget_member_offset},
	{name: "H5Tget_member_value", fn: &H5Tget_member_value},
	{name: "H5Tget_native_type", fn: &H5Tget_native_type},
	{name: "H5Tget_super", fn: &H5Tget_super},
	{name: "H5Tarray_create2", fn: &H5Tarray_create2},
	{name: "H5Tget_array_ndims", fn: &H5Tget_array_ndims},
	{name: "H5Tget_array_dims2", fn: &H5Tget_array_dims2},
	{name: "H5Tvlen_create", fn: &H5Tvlen_create},
	{name: "H5Tenum_create", fn: &H5Tenum_create},
	{name: "H5Tenum_insert", fn: &H5Tenum_insert},
	{name: "H5Tis_variable_str", fn: &H5Tis_variable_str},
	{name: "H5Tget_cset", fn: &H5Tget_cset},
	{name: "H5Tset_cset", fn: &H5Tset_cset},
	{name: "H5Tset_strpad", fn: &H5Tset_strpad},
	{name: "H5Tcompiler_conv", fn: &H5Tcompiler_conv, optional: true, capability: "compiler-conversion"},

	// Attributes.
	{name: "H5Acreate2", fn: &H5Acreate2},
	{name: "H5Aopen", fn: &H5Aopen},
	{name: "H5Aclose", fn: &H5Aclose},
	{name: "H5Aread", fn: &H5Aread},
	{name: "H5Awrite", fn: &H5Awrite},
	{name: "H5Adelete", fn: &H5Adelete},
	{name: "H5Aexists", fn: &H5Aexists},
	{name: "H5Aget_name", fn: &H5Aget_name},
	{name: "H5Aget_space", fn: &H5Aget_space},
	{name: "H5Aget_type", fn: &H5Aget_type},
	{name: "H5Aget_storage_size", fn: &H5Aget_storage_size},
	{name: "H5Aiterate2", fn: &H5Aiterate2},

	// Identifiers.
	{name: "H5Iget_type", fn: &H5Iget_type},
	{name: "H5Iis_valid", fn: &H5Iis_valid},
	{name: "H5Iinc_ref", fn: &H5Iinc_ref},
	{name: "H5Idec_ref", fn: &H5Idec_ref},
	{name: "H5Iget_ref", fn: &H5Iget_ref},
	{name: "H5Iget_name", fn: &H5Iget_name},
	{name: "H5Iget_file_id", fn: &H5Iget_file_id},

	// Links.
	{name: "H5Lexists", fn: &H5Lexists},
	{name: "H5Ldelete", fn: &H5Ldelete},
	{name: "H5Lmove", fn: &H5Lmove},
	{name: "H5Lcreate_hard", fn: &H5Lcreate_hard},
	{name: "H5Lcreate_soft", fn: &H5Lcreate_soft},
	{name: "H5Lcreate_external", fn: &H5Lcreate_external},
	{name: "H5Literate", fn: &H5Literate},
	{name: "H5Literate2", fn: &H5Literate2, optional: true, capability: "iterate-v2"},
	{name: "H5Lget_info2", fn: &H5Lget_info2, optional: true, capability: "iterate-v2"},

	// Objects.
	{name: "H5Oopen", fn: &H5Oopen},
	{name: "H5Oopen_by_addr", fn: &H5Oopen_by_addr},
	{name: "H5Oclose", fn: &H5Oclose},
	{name: "H5Ocopy", fn: &H5Ocopy},
	{name: "H5Oget_comment", fn: &H5Oget_comment},
	{name: "H5Oset_comment", fn: &H5Oset_comment},
	{name: "H5Oget_info1", fn: &H5Oget_info1},
	{name: "H5Oget_info3", fn: &H5Oget_info3, optional: true, capability: "object-info-v3"},
	{name: "H5Oopen_by_token", fn: &H5Oopen_by_token, optional: true, capability: "object-info-v3"},

	// Property lists.
	{name: "H5Pcreate", fn: &H5Pcreate},
	{name: "H5Pclose", fn: &H5Pclose},
	{name: "H5Pcopy", fn: &H5Pcopy},
	{name: "H5Pequal", fn: &H5Pequal},
	{name: "H5Pget_class", fn: &H5Pget_class},
	{name: "H5Pset_userblock", fn: &H5Pset_userblock},
	{name: "H5Pget_userblock", fn: &H5Pget_userblock},
	{name: "H5Pset_chunk", fn: &H5Pset_chunk},
	{name: "H5Pget_chunk", fn: &H5Pget_chunk},
	{name: "H5Pset_chunk_cache", fn: &H5Pset_chunk_cache},
	{name: "H5Pset_deflate", fn: &H5Pset_deflate},
	{name: "H5Pset_shuffle", fn: &H5Pset_shuffle},
	{name: "H5Pset_fletcher32", fn: &H5Pset_fletcher32},
	{name: "H5Pset_layout", fn: &H5Pset_layout},
	{name: "H5Pget_layout", fn: &H5Pget_layout},
	{name: "H5Pset_alloc_time", fn: &H5Pset_alloc_time},
	{name: "H5Pset_fill_time", fn: &H5Pset_fill_time},
	{name: "H5Pset_fill_value", fn: &H5Pset_fill_value},
	{name: "H5Pset_libver_bounds", fn: &H5Pset_libver_bounds},
	{name: "H5Pset_fapl_core", fn: &H5Pset_fapl_core},
	{name: "H5Pset_fclose_degree", fn: &H5Pset_fclose_degree},
	{name: "H5Pset_create_intermediate_group", fn: &H5Pset_create_intermediate_group},
	{name: "H5Pget_nfilters", fn: &H5Pget_nfilters},
	{name: "H5Pset_filter", fn: &H5Pset_filter},
	{name: "H5Pall_filters_avail", fn: &H5Pall_filters_avail},
	{name: "H5Pset_obj_track_times", fn: &H5Pset_obj_track_times},

	// References.
	{name: "H5Rcreate", fn: &H5Rcreate},
	{name: "H5Rdereference2", fn: &H5Rdereference2},
	{name: "H5Rget_obj_type2", fn: &H5Rget_obj_type2},
	{name: "H5Rcreate_object", fn: &H5Rcreate_object, optional: true, capability: "reference-v2"},
	{name: "H5Ropen_object", fn: &H5Ropen_object, optional: true, capability: "reference-v2"},
	{name: "H5Rdestroy", fn: &H5Rdestroy, optional: true, capability: "reference-v2"},
	{name: "H5Rget_obj_type3", fn: &H5Rget_obj_type3, optional: true, capability: "reference-v2"},

	// Filters.
	{name: "H5Zfilter_avail", fn: &H5Zfilter_avail},
	{name: "H5Zget_filter_info", fn: &H5Zget_filter_info, optional: true, capability: "filter-info"},
	{name: "H5Zregister", fn: &H5Zregister},
}
