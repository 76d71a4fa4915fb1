// Package proxy puts a caching edge in front of a content origin, the way a
// CDN node fronts an origin server. CachingProxy and the origins share the
// Origin interface, so callers cannot tell whether content came from cache.
//
// The origin can also live in another process: NewOriginHandler serves any
// Origin over connect RPC and RemoteOrigin is the matching client. Both use
// well-known protobuf wrapper types, so no generated code is involved.
package proxy
