// Package manifest reads and writes dataset manifest files.
//
// A manifest is a YAML document with a top-level "dataset" sequence:
//
//	dataset:
//	  - fides_key: users_db
//	    name: Users
//	    description: Customer accounts
//	    collections:
//	      - name: users
//	        description: Registered users
//	        fields:
//	          - name: email
//	            description: Contact address
//	            data_categories: [user.contact.email]
//
// Load accepts a single file or a directory of manifests. Write always
// replaces the whole file; there is no partial update format.
package manifest
