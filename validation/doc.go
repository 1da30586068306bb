// Package validation reports struct-tag validation failures as problem
// documents.
//
//	type CreateOrder struct {
//	    Item  string `json:"item" validate:"required"`
//	    Count int    `json:"count" validate:"min=1"`
//	}
//
//	if err := validation.Struct(cmd); err != nil {
//	    server.RespondError(c, err)
//	    return
//	}
//
// Failures come back as a 422 Unprocessable Entity problem whose detail
// joins the per-field messages; field names follow the json tag (snake_case
// of the Go name when untagged). Problem documents carry only the four
// standard RFC 7807 members, so field errors are flattened into detail
// rather than attached as an extension member.
package validation
