// Package document reads YAML layout documents and builds element trees
// from them.
//
// A document names a viewport, a text measurer and a root node:
//
//	width: 320
//	height: 240
//	font: cells
//	root:
//	  kind: stack
//	  direction: column
//	  children:
//	    - kind: text
//	      text: Title
//	    - kind: scroll
//	      fill: 1
//	      children:
//	        - kind: wrap
//	          spacing: 4
package document
