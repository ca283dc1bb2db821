// Package portfolio renders a personal portfolio page from a profile.
//
// # Quick Start
//
// Create a generator for an assets directory and an output file, then
// generate the page:
//
//	gen, err := portfolio.NewGenerator("assets", "index.html")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := gen.Generate(ctx, portfolio.Input{
//	    Profile: &portfolio.Profile{
//	        Name:   "Ada Lovelace",
//	        Skills: []string{"C", "Math"},
//	    },
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("written to", result.OutputPath)
//
// # Template
//
// The template is a plain HTML file containing these placeholders:
//
//	{{NAME}} {{BIO}} {{ABOUT}} {{CONTACT}}
//	{{SKILLS}} {{EDUCATION}} {{PROJECTS}} {{PFP}}
//
// Each placeholder is replaced once, at its first occurrence, in the order
// listed. A placeholder that appears twice keeps its second copy. There are
// no conditionals, loops or includes.
//
// User text is inserted verbatim. No HTML escaping is applied, so the page
// must not be served with untrusted input.
//
// # Profile Picture
//
// {{PFP}} becomes "assets/pfp.jpg" when that file exists, else
// "assets/defaultpfp.jpg". The reference is relative to the output file.
//
// # PDF Export
//
// PDFExporter prints a written page to PDF with headless Chrome (go-rod).
// Set ROD_BROWSER_BIN to use a specific browser and ROD_NO_SANDBOX=1 in
// containers.
package portfolio
