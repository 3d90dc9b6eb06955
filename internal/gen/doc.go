// Package gen generates the registration code of a package.
//
// Generation uses text/template + go/format. The output is one file holding
// an init function:
//   - member.MustDefine per configured struct, one Field entry per field not
//     skipped (renamed by config or by a typekit struct tag) and one Func
//     entry per listed method
//   - enum.MustConfigure per configured enum, with the scan range spanning
//     the declared constants, and a Literal describer for enums without a
//     String method
package gen
