// Package config loads the typekit-gen configuration.
//
// A configuration names one package and the struct and enum types the
// generator registers for it. Files ending in .yaml or .yml are read with
// yaml.v3, files ending in .hcl with hclparse and gohcl:
//
//	package = "./model"
//
//	struct "Order" {
//	  methods = ["Reset"]
//	  skip    = ["secret"]
//	  rename  = { ID = "id" }
//	}
//
//	enum "Status" {
//	  min = 0
//	  max = 404
//	}
package config
