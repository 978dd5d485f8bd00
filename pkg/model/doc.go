// Package model defines the dataset tree written to and read from manifests.
//
// A Dataset owns an ordered list of Collections, and each Collection owns an
// ordered list of Fields. Any level may carry data categories, the labels the
// annotator asks operators for. The shape of the tree never changes once it is
// loaded; annotation only fills in empty category lists.
//
// Validate applies the policy rules to a whole tree:
//
//	ds := model.Dataset{FidesKey: "users_db", Name: "Users"}
//	ds.ApplyDefaults()
//	if err := ds.Validate(); err != nil {
//		return err
//	}
package model
