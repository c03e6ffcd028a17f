// Package sigflag builds a command-line argument parser from a declared
// function signature: an ordered list of parameters, each with an optional
// type descriptor and an optional default, plus a docstring that supplies
// per-parameter help.
//
// For example:
//  sigflag.Main(sigflag.Func{
//      Doc: `
//          Fetch a resource.
//
//          :param url: the resource to fetch
//          :param timeout: how long to wait`,
//      Params: []sigflag.Param{
//          sigflag.P("url").Type(sigflag.URL),
//          sigflag.P("timeout").Default(10 * time.Second),
//      },
//      Invoke: func(v sigflag.Values) error {
//          return fetch(v["url"].(*url.URL), v["timeout"].(time.Duration))
//      },
//  })
//
// Parameters with neither a type nor a default become plain positional
// arguments taking the raw text. Typed parameters are positional unless they
// also have a default, in which case they become a --kebab-cased flag. List
// and variadic tuple types consume one or more tokens, fixed tuple types
// consume exactly as many tokens as they declare positions, and enum types
// restrict input to their member names. A parameter with only a default
// always becomes a flag whose behavior is inferred from the default's type;
// notably a bool default makes a valueless flag whose presence inverts the
// default, whatever it is.
package sigflag
