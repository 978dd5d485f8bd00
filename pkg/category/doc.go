// Package category lists the valid data categories and validates operator
// supplied labels against them.
//
// A Lister is the only way the rest of steward learns which categories exist.
// HTTPLister asks the policy server; FileLister reads a local taxonomy file
// for offline use. Validate is a pure check of a batch of labels against a
// previously fetched list.
package category
