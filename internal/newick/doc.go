/*
Package newick provides facilities for reading and writing trees in the
Newick format. The format used is roughly equivalent to the conventions
established here:
http://evolution.genetics.washington.edu/phylip/newick_doc.html.

Labels may be unquoted or single-quoted (a quote inside a quoted label is
written twice). Bracketed comments are skipped wherever whitespace is
allowed. An unquoted numeric label on an internal node is read as a support
value and stored in Clade.Confidence.

Neither the reader nor the writer recurse on the call stack, so deeply
nested trees are limited only by memory.
*/
package newick
