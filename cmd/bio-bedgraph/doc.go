/*Command bio-bedgraph converts a tab-delimited BED-like interval file
  into a bedGraph track. Each output line pairs an input interval with
  one numeric value, taken either from the score column or from one of
  the value columns that follow it.

  Usage: bio-bedgraph -input in.bed [-output out.bedgraph] [-value-column score|N]

  With no -output the track is written to standard output. An -output
  path ending in .gz is gzip-compressed.
*/
package main
