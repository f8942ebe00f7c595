// SPDX-License-Identifier: Unlicense OR MIT

// Package env implements WaterUI's type-keyed environment: a
// persistent context map threaded through view composition, the same
// role gio's layout.Context plays for constraints/queue/ops, but keyed
// by arbitrary application-defined value types instead of a fixed
// struct of fields.
package env
