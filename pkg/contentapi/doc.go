// Package contentapi implements the core of a small content-management
// service: counting, paginated/filtered/sorted listing, retrieval, creation,
// update, and deletion of content items owned by users.
//
// It exposes a single Service interface over two injected collaborators: a
// ContentStore holding the ordered, mutable collection of content records,
// and a UserDirectory resolving content owners. In-memory implementations of
// both are provided under subpackages.
//
// Authorization is a deliberately trivial scheme inherited from the API
// contract: the raw Authorization header value is matched against a user
// nickname. Services resolve credentials only through
// UserDirectory.UserByNickname, so a real scheme can replace the directory
// without touching service logic.
package contentapi
